// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package registry

// stateLandLaws captures land-law attributes per state or union territory.
// Legal attributes are nominally state-scoped; sub-regional deviations are
// expressed through the city override maps in overrides.go.
var stateLandLaws = map[string]StateLawProfile{
	"Andhra Pradesh": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       5.0,
		RegistrationPct:    0.5,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        true,
		SpecialNotes:       "AP RERA active. Land Grabbing Prohibition Act in force.",
	},
	"Arunachal Pradesh": {
		RERAActive:         true,
		LandCeilingAct:     false,
		AgriConversionEase: "Difficult",
		StampDutyPct:       6.0,
		RegistrationPct:    1.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "ILP required. Non-tribals cannot buy land. Protected under Bengal Eastern Frontier Regulation 1873.",
	},
	"Assam": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       8.0,
		RegistrationPct:    0.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Certain tribal belts have land transfer restrictions. NRC & land documentation issues.",
	},
	"Bihar": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       6.0,
		RegistrationPct:    2.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        false,
		SpecialNotes:       "Poor land records. Digitization underway. Frequent title disputes.",
	},
	"Chhattisgarh": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       5.0,
		RegistrationPct:    4.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Scheduled Area restrictions. CNT Act applies to tribal land.",
	},
	"Goa": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       3.5,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        true,
		SpecialNotes:       "Portuguese-era land laws. Communidade (community) land issues. Strict CRZ norms.",
	},
	"Gujarat": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Easy",
		StampDutyPct:       4.9,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        true,
		SpecialNotes:       "Online mutation. GUJRERA active. NA conversion streamlined. Tribal areas restricted.",
	},
	"Haryana": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       7.0,
		RegistrationPct:    0.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        false,
		SpecialNotes:       "Section 118 restricts agricultural land sale. CLU (Change of Land Use) mandatory for non-agri use. HRERA very active.",
	},
	"Himachal Pradesh": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       5.0,
		RegistrationPct:    2.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Section 118 HP Tenancy Act – non-agriculturists CANNOT buy agri land. Tribal areas restricted. Special permission needed for outsiders.",
	},
	"Jharkhand": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       4.0,
		RegistrationPct:    3.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "CNT Act & SPT Act – tribal land CANNOT be transferred to non-tribals. Strict enforcement.",
	},
	"Karnataka": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       5.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        true,
		SpecialNotes:       "Section 79A & 79B – only agriculturists can buy agri land. KRERA active. Bhoomi digital records.",
	},
	"Kerala": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       8.0,
		RegistrationPct:    2.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        true,
		SpecialNotes:       "Strict CRZ & eco-sensitive zone. Kerala Land Reforms Act ceiling limits. Tribal land inalienable.",
	},
	"Madhya Pradesh": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       7.5,
		RegistrationPct:    3.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Diversion from agri land needs Collector approval. Tribal areas under PESA Act.",
	},
	"Maharashtra": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       5.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        true,
		SpecialNotes:       "MahaRERA very strict. NA conversion required. Section 36A (gairan/govt land) issues. Ready Reckoner rates apply.",
	},
	"Manipur": {
		RERAActive:         true,
		LandCeilingAct:     false,
		AgriConversionEase: "Difficult",
		StampDutyPct:       7.0,
		RegistrationPct:    3.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Hill areas under customary law. Valley land under state law. Non-Manipuris restricted.",
	},
	"Meghalaya": {
		RERAActive:         true,
		LandCeilingAct:     false,
		AgriConversionEase: "Difficult",
		StampDutyPct:       9.9,
		RegistrationPct:    0.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Land under Autonomous District Councils (6th Schedule). Non-tribals CANNOT buy land in most areas.",
	},
	"Mizoram": {
		RERAActive:         true,
		LandCeilingAct:     false,
		AgriConversionEase: "Difficult",
		StampDutyPct:       5.0,
		RegistrationPct:    2.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "ILP required. Land under village councils/chief system. Non-Mizos cannot purchase.",
	},
	"Nagaland": {
		RERAActive:         true,
		LandCeilingAct:     false,
		AgriConversionEase: "Difficult",
		StampDutyPct:       8.0,
		RegistrationPct:    2.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Article 371(A) protection. Land under tribal customary law. Non-Nagas severely restricted.",
	},
	"Odisha": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       5.0,
		RegistrationPct:    2.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        true,
		SpecialNotes:       "OGLS Act regulates transfers. Scheduled Areas restrict tribal land sale. CRZ applies.",
	},
	"Punjab": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       7.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        false,
		SpecialNotes:       "Section 118 restrictions. Agriculturist condition for agri land. CLU required for non-agri use.",
	},
	"Rajasthan": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       5.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Rajasthan Tenancy Act applies. Tribal sub-plan areas restricted. DLC rate governs stamp duty.",
	},
	"Sikkim": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       6.0,
		RegistrationPct:    1.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Revenue Order No.1 – only Sikkim Subject holders can buy land. Non-Sikkimese CANNOT purchase.",
	},
	"Tamil Nadu": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       7.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        true,
		SpecialNotes:       "TNRERA active. Hill station restrictions (Nilgiris). Patta verification essential. CRZ zones.",
	},
	"Telangana": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Easy",
		StampDutyPct:       5.0,
		RegistrationPct:    0.5,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        false,
		SpecialNotes:       "Dharani portal for digital land records. LRS (Layout Regularization Scheme). TSRERA active.",
	},
	"Tripura": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       5.0,
		RegistrationPct:    3.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "ADC (Autonomous District Council) areas restricted. Tripura Land Revenue & Land Reforms Act applies.",
	},
	"Uttar Pradesh": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       7.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        false,
		SpecialNotes:       "UP RERA very active. Circle rate (guideline value) governs. Consolidation (chakbandi) areas frozen for transfer.",
	},
	"Uttarakhand": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       5.0,
		RegistrationPct:    2.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Non-domiciled CANNOT buy agri land. Hill area restrictions. Forest land issues near parks.",
	},
	"West Bengal": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       6.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        true,
		SpecialNotes:       "WBHIRA instead of RERA. Strict conversion rules. Raiyati & non-raiyati land distinction.",
	},
	"Delhi": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       6.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        false,
		SpecialNotes:       "DDA land vs Freehold. L&DO lease issues. Unauthorized colonies regularization ongoing. High litigation rate.",
	},
	"Jammu & Kashmir": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       7.0,
		RegistrationPct:    1.5,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Post-Article 370 abrogation – outsiders can now buy non-agri land. Agri land still restricted. Security concerns in some zones.",
	},
	"Ladakh": {
		RERAActive:         false,
		LandCeilingAct:     false,
		AgriConversionEase: "Difficult",
		StampDutyPct:       5.0,
		RegistrationPct:    1.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "UT status recent. Land laws still evolving. Tribal protections. Non-residents restricted. Strategic border area.",
	},
	"Puducherry": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       7.0,
		RegistrationPct:    2.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        true,
		SpecialNotes:       "French-era title deeds exist. CRZ norms along coast. Guideline values updated regularly.",
	},
	"Andaman & Nicobar": {
		RERAActive:         false,
		LandCeilingAct:     true,
		AgriConversionEase: "Difficult",
		StampDutyPct:       5.0,
		RegistrationPct:    1.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        true,
		SpecialNotes:       "A&N Islands (Protection of Aboriginal Tribes) Regulation. Non-settlers restricted. CRZ strict. Tribal island access prohibited.",
	},
	"Chandigarh": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       6.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        false,
		SpecialNotes:       "Chandigarh Administration land. Leasehold vs freehold. Conversion charges applicable. Well-documented records.",
	},
	"Dadra & Nagar Haveli": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       3.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  true,
		CoastalZone:        false,
		SpecialNotes:       "Tribal population has land protection. Industrial zone land well-documented. Merged UT administration.",
	},
	"Daman & Diu": {
		RERAActive:         true,
		LandCeilingAct:     true,
		AgriConversionEase: "Moderate",
		StampDutyPct:       3.0,
		RegistrationPct:    1.0,
		NRIAllowed:         true,
		TribalRestriction:  false,
		CoastalZone:        true,
		SpecialNotes:       "Portuguese-era documents. CRZ norms apply. Tourism zone development rules.",
	},
	"Lakshadweep": {
		RERAActive:         false,
		LandCeilingAct:     false,
		AgriConversionEase: "Difficult",
		StampDutyPct:       5.0,
		RegistrationPct:    1.0,
		NRIAllowed:         false,
		TribalRestriction:  true,
		CoastalZone:        true,
		SpecialNotes:       "Lakshadweep (Protection of Scheduled Tribes) Regulation. Non-islanders CANNOT buy land. Extremely restricted.",
	},
}
