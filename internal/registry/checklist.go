// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package registry

// commonLegalRisks is the pan-India due-diligence catalogue returned with
// every legal risk profile.
var commonLegalRisks = []RiskCategory{
	{
		Category: "Title & Ownership",
		Risks: []LegalRiskItem{
			{Name: "Clear Title Verification", Description: "Ensure property has clear, undisputed title chain going back 30+ years", Severity: "Critical"},
			{Name: "Encumbrance Certificate (EC)", Description: "Verify no mortgages, liens, pending loans, or legal charges on property", Severity: "Critical"},
			{Name: "Succession & Inheritance Disputes", Description: "Check for pending family disputes, partition suits, or HUF property claims", Severity: "High"},
			{Name: "Power of Attorney (PoA) Sales", Description: "GPA/SPA sales are risky – Supreme Court ruled them invalid for transfer of title", Severity: "High"},
			{Name: "Benami Transaction", Description: "Ensure property is not held in someone else's name (Benami Transactions Act 1988)", Severity: "Critical"},
		},
	},
	{
		Category: "Regulatory & Compliance",
		Risks: []LegalRiskItem{
			{Name: "RERA Registration", Description: "All projects >500 sqm or >8 units must be RERA registered. Check on state RERA portal", Severity: "Critical"},
			{Name: "Building Plan Approval", Description: "Verify sanctioned plan from local body (municipal corporation/panchayat)", Severity: "High"},
			{Name: "Occupancy Certificate (OC)", Description: "For constructed properties – OC confirms building complied with approved plans", Severity: "High"},
			{Name: "Completion Certificate (CC)", Description: "Confirms construction is complete as per sanctioned plan", Severity: "High"},
			{Name: "Environmental Clearance", Description: "Required for projects near forests, water bodies, eco-sensitive zones (MoEFCC)", Severity: "Medium"},
		},
	},
	{
		Category: "Land Classification",
		Risks: []LegalRiskItem{
			{Name: "Agricultural to Non-Agricultural (NA) Conversion", Description: "Agri land MUST be converted to NA/non-agricultural before residential/commercial use", Severity: "Critical"},
			{Name: "Government / Revenue Land", Description: "Check if land is gairan, nazar, inam, or poramboke (state-owned) – CANNOT be sold", Severity: "Critical"},
			{Name: "Forest Land (Forest Rights Act)", Description: "Forest department land cannot be used for private purpose without central clearance", Severity: "Critical"},
			{Name: "Ceiling Surplus Land", Description: "Land exceeding state ceiling limits may be acquired by government", Severity: "High"},
			{Name: "Coastal Regulation Zone (CRZ)", Description: "Construction heavily restricted in CRZ-I, limited in CRZ-II & III areas", Severity: "High"},
		},
	},
	{
		Category: "Financial & Tax",
		Risks: []LegalRiskItem{
			{Name: "Stamp Duty & Registration", Description: "Ensure correct stamp duty is paid per state rates – undervaluation attracts penalty", Severity: "High"},
			{Name: "TDS on Property (Section 194-IA)", Description: "Buyer must deduct 1% TDS if property value exceeds ₹50 lakhs", Severity: "Medium"},
			{Name: "Capital Gains Tax", Description: "Seller must pay LTCG (20% with indexation) or STCG on sale profits", Severity: "Medium"},
			{Name: "Pending Property Tax", Description: "Verify no outstanding municipal property tax dues on the property", Severity: "Medium"},
			{Name: "GST on Under-Construction", Description: "GST at 5% (non-affordable) / 1% (affordable) on under-construction property", Severity: "Medium"},
		},
	},
	{
		Category: "Due Diligence Checks",
		Risks: []LegalRiskItem{
			{Name: "Physical Survey & Measurement", Description: "Match actual land area with documents. Engage licensed surveyor", Severity: "High"},
			{Name: "Mutation / Khata Transfer", Description: "Revenue records must show seller as current owner (7/12 extract, Patta, Chitta)", Severity: "Critical"},
			{Name: "Litigation Check (Lis Pendens)", Description: "Search court records for pending cases on the property", Severity: "High"},
			{Name: "NOC from Housing Society", Description: "For resale flats – society NOC is mandatory for transfer", Severity: "Medium"},
			{Name: "Bank Approval / Loan Eligibility", Description: "Check if major banks approve loans for the property (proxy for legitimacy)", Severity: "Medium"},
		},
	},
}
