// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package registry

// Area risk reference tables. Sub-risk scores are 0-100, higher is riskier.
// City entries override state entries; absent keys fall back to the numeric
// defaults in scoring.

var floodRiskByState = map[string]int{
	"Assam": 85,
	"Bihar": 80,
	"West Bengal": 70,
	"Kerala": 75,
	"Odisha": 72,
	"Uttar Pradesh": 55,
	"Uttarakhand": 60,
	"Andhra Pradesh": 50,
	"Tamil Nadu": 55,
	"Telangana": 45,
	"Karnataka": 40,
	"Maharashtra": 45,
	"Gujarat": 50,
	"Madhya Pradesh": 35,
	"Chhattisgarh": 30,
	"Jharkhand": 40,
	"Punjab": 45,
	"Haryana": 35,
	"Rajasthan": 20,
	"Himachal Pradesh": 45,
	"Goa": 50,
	"Tripura": 60,
	"Meghalaya": 65,
	"Manipur": 55,
	"Mizoram": 50,
	"Nagaland": 45,
	"Arunachal Pradesh": 55,
	"Sikkim": 50,
	"Delhi": 40,
	"Jammu & Kashmir": 45,
	"Ladakh": 25,
	"Puducherry": 55,
	"Andaman & Nicobar": 60,
	"Chandigarh": 30,
	"Dadra & Nagar Haveli": 35,
	"Daman & Diu": 45,
	"Lakshadweep": 65,
}

var waterScarcityByState = map[string]int{
	"Rajasthan": 90,
	"Gujarat": 60,
	"Maharashtra": 55,
	"Tamil Nadu": 65,
	"Karnataka": 60,
	"Telangana": 55,
	"Andhra Pradesh": 50,
	"Madhya Pradesh": 50,
	"Haryana": 55,
	"Punjab": 45,
	"Delhi": 60,
	"Uttar Pradesh": 45,
	"Chhattisgarh": 35,
	"Jharkhand": 40,
	"Bihar": 35,
	"Odisha": 30,
	"West Bengal": 25,
	"Kerala": 20,
	"Goa": 25,
	"Himachal Pradesh": 20,
	"Uttarakhand": 20,
	"Assam": 15,
	"Meghalaya": 15,
	"Tripura": 20,
	"Manipur": 20,
	"Mizoram": 20,
	"Nagaland": 25,
	"Arunachal Pradesh": 15,
	"Sikkim": 15,
	"Jammu & Kashmir": 25,
	"Ladakh": 70,
	"Puducherry": 55,
	"Andaman & Nicobar": 40,
	"Chandigarh": 35,
	"Dadra & Nagar Haveli": 35,
	"Daman & Diu": 40,
	"Lakshadweep": 60,
}

var floodRiskCityOverride = map[string]int{
	"Mumbai, Maharashtra": 82,
	"Chennai, Tamil Nadu": 78,
	"Kolkata, West Bengal": 75,
	"Patna, Bihar": 85,
	"Guwahati, Assam": 80,
	"Kochi, Kerala": 70,
	"Srinagar, Jammu & Kashmir": 72,
	"Hyderabad, Telangana": 60,
	"Bengaluru, Karnataka": 55,
	"Puri, Odisha": 78,
	"Alappuzha, Kerala": 82,
	"Varanasi, Uttar Pradesh": 65,
	"Haridwar, Uttarakhand": 68,
	"Dibrugarh, Assam": 82,
	"Silchar, Assam": 88,
	"Port Blair, Andaman & Nicobar": 65,
	"Havelock Island, Andaman & Nicobar": 60,
	"Panaji, Goa": 55,
	"Calangute, Goa": 52,
	"Visakhapatnam, Andhra Pradesh": 62,
	"Kakinada, Andhra Pradesh": 68,
	"Gorakhpur, Uttar Pradesh": 70,
	"Darbhanga, Bihar": 82,
	"Muzaffarpur, Bihar": 78,
	"Bhagalpur, Bihar": 72,
	"Agartala, Tripura": 65,
	"Shillong, Meghalaya": 60,
	"Imphal, Manipur": 58,
	"Aizawl, Mizoram": 45,
	"Digha, West Bengal": 72,
	"Siliguri, West Bengal": 65,
	"Nellore, Andhra Pradesh": 60,
	"Rajahmundry, Andhra Pradesh": 65,
}

var waterScarcityCityOverride = map[string]int{
	"Bengaluru, Karnataka": 75,
	"Chennai, Tamil Nadu": 80,
	"Hyderabad, Telangana": 62,
	"Delhi, Delhi": 70,
	"New Delhi, Delhi": 68,
	"South Delhi, Delhi": 65,
	"Jaipur, Rajasthan": 82,
	"Jodhpur, Rajasthan": 92,
	"Bikaner, Rajasthan": 95,
	"Jaisalmer, Rajasthan": 95,
	"Leh, Ladakh": 75,
	"Kargil, Ladakh": 70,
	"Coimbatore, Tamil Nadu": 60,
	"Madurai, Tamil Nadu": 68,
	"Nagpur, Maharashtra": 58,
	"Pune, Maharashtra": 48,
	"Ahmedabad, Gujarat": 65,
	"Rajkot, Gujarat": 70,
	"Bhavnagar, Gujarat": 72,
	"Indore, Madhya Pradesh": 55,
	"Bhopal, Madhya Pradesh": 45,
	"Gurugram, Haryana": 65,
	"Faridabad, Haryana": 60,
	"Noida, Uttar Pradesh": 50,
	"Lucknow, Uttar Pradesh": 42,
	"Anantapur, Andhra Pradesh": 78,
	"Kurnool, Andhra Pradesh": 72,
	"Kavaratti, Lakshadweep": 68,
	"Agatti, Lakshadweep": 72,
}

// illegalLayoutRisk is city-keyed only: it records documented unauthorized
// layout activity, so there is no meaningful state-level default.
var illegalLayoutRisk = map[string]LayoutRisk{
	"Hyderabad, Telangana": {Score: 75, Details: "Thousands of LRS-pending layouts. Verify HMDA/DTCP approval.", ReportedCases: "High"},
	"Bengaluru, Karnataka": {Score: 70, Details: "BDA vs BBMP layout conflicts. Check A-khata vs B-khata status.", ReportedCases: "High"},
	"Chennai, Tamil Nadu": {Score: 60, Details: "CMDA unapproved layouts on outskirts. Check DTCP approval.", ReportedCases: "Moderate"},
	"Delhi, Delhi": {Score: 80, Details: "1,700+ unauthorized colonies. DDA regularization ongoing but many pending.", ReportedCases: "Very High"},
	"New Delhi, Delhi": {Score: 55, Details: "L&DO lease properties. Farmhouse conversion issues.", ReportedCases: "Moderate"},
	"Noida, Uttar Pradesh": {Score: 72, Details: "Builder defaults, stalled projects. Verify Noida Authority allotment.", ReportedCases: "High"},
	"Greater Noida, Uttar Pradesh": {Score: 68, Details: "Yamuna Expressway land acquisition disputes. Check authority lease.", ReportedCases: "High"},
	"Ghaziabad, Uttar Pradesh": {Score: 65, Details: "GDA layout issues. Unauthorized colonies along NH-24 & NH-58.", ReportedCases: "High"},
	"Faridabad, Haryana": {Score: 60, Details: "Aravalli zone encroachments. Check HRERA and DTCP licence.", ReportedCases: "Moderate"},
	"Gurugram, Haryana": {Score: 55, Details: "Licensed colony vs unauthorized builder issues. Verify HRERA.", ReportedCases: "Moderate"},
	"Mumbai, Maharashtra": {Score: 50, Details: "SRA slum redevelopment complications. Verify IOD/CC from BMC.", ReportedCases: "Moderate"},
	"Patna, Bihar": {Score: 70, Details: "Unauthorized colonies on agricultural land. Poor land records.", ReportedCases: "High"},
	"Lucknow, Uttar Pradesh": {Score: 58, Details: "LDA layout disputes. Gomti riverfront encroachment issues.", ReportedCases: "Moderate"},
	"Kolkata, West Bengal": {Score: 55, Details: "Panchayat area layouts often unapproved. Check KMDA approval.", ReportedCases: "Moderate"},
	"Ahmedabad, Gujarat": {Score: 45, Details: "TP scheme pending areas. Check AUDA/AMC NA status.", ReportedCases: "Low-Moderate"},
	"Pune, Maharashtra": {Score: 50, Details: "Hill slope & green zone violations. Check PMC/PCMC sanctions.", ReportedCases: "Moderate"},
	"Jaipur, Rajasthan": {Score: 55, Details: "JDA unapproved colonies. Verify JDA/Nagar Nigam layout plan.", ReportedCases: "Moderate"},
	"Amaravati, Andhra Pradesh": {Score: 65, Details: "Capital status uncertain. Land pooling scheme disputes.", ReportedCases: "High"},
	"Visakhapatnam, Andhra Pradesh": {Score: 50, Details: "VMRDA layout verification essential. Hill zone restrictions.", ReportedCases: "Moderate"},
	"Bhubaneswar, Odisha": {Score: 45, Details: "BDA approved layouts generally safe. Outskirts risky.", ReportedCases: "Low-Moderate"},
	"Ranchi, Jharkhand": {Score: 60, Details: "Tribal land sale void. Check RRDA layout approval.", ReportedCases: "Moderate"},
	"Raipur, Chhattisgarh": {Score: 48, Details: "Naya Raipur well-planned. Old Raipur layouts need RDA check.", ReportedCases: "Low-Moderate"},
	"Indore, Madhya Pradesh": {Score: 45, Details: "IDA layouts generally okay. Peripheral area risks.", ReportedCases: "Low-Moderate"},
	"Bhopal, Madhya Pradesh": {Score: 48, Details: "BDA layout verification needed. Lake area encroachments.", ReportedCases: "Low-Moderate"},
	"Ayodhya, Uttar Pradesh": {Score: 70, Details: "Rapid speculative buying. Many unauthorized plotters active.", ReportedCases: "High"},
	"Yamuna Expressway, Uttar Pradesh": {Score: 72, Details: "Unauthorized farm plots sold illegally near expressway.", ReportedCases: "High"},
	"Jewar (Noida Airport), Uttar Pradesh": {Score: 68, Details: "Speculative land grab around airport. Verify YEIDA allotment.", ReportedCases: "High"},
	"Panvel, Maharashtra": {Score: 55, Details: "CIDCO vs private layout confusion. Navi Mumbai Airport zone.", ReportedCases: "Moderate"},
	"Shamshabad, Telangana": {Score: 58, Details: "Airport zone unauthorized layouts. Verify HMDA permissions.", ReportedCases: "Moderate"},
	"Medchal, Telangana": {Score: 62, Details: "Growth corridor attracts illegal plotters. Check HMDA/DTCP.", ReportedCases: "Moderate-High"},
}

// landDisputeHistory is city-keyed only, like illegalLayoutRisk.
var landDisputeHistory = map[string]DisputeRisk{
	"Ayodhya, Uttar Pradesh": {Score: 80, Details: "Historic religious land disputes. New temple area land acquisition cases.", DisputeType: "Religious/Government Acquisition"},
	"Amaravati, Andhra Pradesh": {Score: 78, Details: "Capital land pooling disputes. Farmers challenging acquisition.", DisputeType: "Government Land Pooling"},
	"Noida, Uttar Pradesh": {Score: 75, Details: "Multiple builder insolvency (NCLT). Farmer-Authority land disputes.", DisputeType: "Builder Default / Acquisition"},
	"Greater Noida, Uttar Pradesh": {Score: 72, Details: "Yamuna Expressway farmer protests. Builder possession delays.", DisputeType: "Farmer / Builder Disputes"},
	"Mumbai, Maharashtra": {Score: 60, Details: "Mill land disputes. SRA/slum land litigation. Pagdi tenant issues.", DisputeType: "Tenant / Redevelopment"},
	"Delhi, Delhi": {Score: 65, Details: "DDA acquisition disputes. Unauthorized colony regularization cases.", DisputeType: "DDA / Unauthorized Colony"},
	"Kolkata, West Bengal": {Score: 55, Details: "Singur/Rajarhat type acquisition challenges. Vested land issues.", DisputeType: "State Acquisition / Vested Land"},
	"Bengaluru, Karnataka": {Score: 58, Details: "Lake encroachment demolitions. BDA acquisition compensation disputes.", DisputeType: "Encroachment / Acquisition"},
	"Hyderabad, Telangana": {Score: 55, Details: "Wakf Board land disputes. Old Nizam-era title conflicts.", DisputeType: "Wakf / Historical Title"},
	"Chennai, Tamil Nadu": {Score: 50, Details: "Poramboke (govt) land encroachment. ECR zone disputes.", DisputeType: "Government Land / CRZ"},
	"Goa, Goa": {Score: 52, Details: "Communidade land ownership disputes. Portuguese-era title confusion.", DisputeType: "Community / Colonial Title"},
	"Panaji, Goa": {Score: 52, Details: "Communidade land ownership disputes. Portuguese-era title confusion.", DisputeType: "Community / Colonial Title"},
	"Srinagar, Jammu & Kashmir": {Score: 70, Details: "Post-370 land law changes. State subject vs outsider disputes.", DisputeType: "Constitutional / Political"},
	"Jammu, Jammu & Kashmir": {Score: 62, Details: "Roshni Act land disputes. Industrial estate issues.", DisputeType: "Roshni Act / Industrial"},
	"Patna, Bihar": {Score: 65, Details: "Benami land holdings. Succession disputes. Poor record keeping.", DisputeType: "Benami / Succession"},
	"Ranchi, Jharkhand": {Score: 68, Details: "CNT/SPT Act violations. Tribal vs non-tribal transfer disputes.", DisputeType: "Tribal Land Act"},
	"Jamshedpur, Jharkhand": {Score: 55, Details: "TATA leasehold vs freehold disputes. Industrial land issues.", DisputeType: "Leasehold / Industrial"},
	"Yamuna Expressway, Uttar Pradesh": {Score: 75, Details: "Farmer land acquisition protests. Compensation disputes.", DisputeType: "Farmer Acquisition"},
	"Jewar (Noida Airport), Uttar Pradesh": {Score: 72, Details: "Airport area compulsory acquisition. Compensation litigation.", DisputeType: "Airport Acquisition"},
	"Shimla, Himachal Pradesh": {Score: 50, Details: "Section 118 violations. Outsider purchase disputes.", DisputeType: "Tenancy Act Violation"},
	"Gurugram, Haryana": {Score: 52, Details: "Licensed colony non-delivery cases. Section 118 agri-land issues.", DisputeType: "Builder / Agri-Land"},
	"Guwahati, Assam": {Score: 58, Details: "Tribal belt land encroachment. NRC-linked land disputes.", DisputeType: "Tribal / NRC"},
	"Imphal, Manipur": {Score: 55, Details: "Hill vs valley land law conflicts. Customary law disputes.", DisputeType: "Customary / Constitutional"},
}

// zoneDevDistance is a proxy for distance from concentrated development,
// keyed by zone archetype. Lower means closer to core development.
var zoneDevDistance = map[string]int{
	"IT Capital": 0,
	"IT/Corporate Hub": 0,
	"IT Hub": 0,
	"IT/Tech Hub": 0,
	"Financial Capital": 0,
	"National Capital": 0,
	"Metro City": 0,
	"Commercial Hub": 5,
	"State Capital": 5,
	"IT Corridor": 5,
	"IT City": 5,
	"IT/NCR Hub": 5,
	"Planned City": 5,
	"Smart City/SEZ": 5,
	"Industrial Hub": 10,
	"Industrial City": 10,
	"Port City": 10,
	"NCR City": 10,
	"NCR Satellite": 10,
	"Tier-1 City": 10,
	"Twin City": 10,
	"Premium Residential": 5,
	"Premium Commercial": 0,
	"Metro Suburb": 10,
	"Navi Mumbai Ext.": 10,
	"Sub-City": 10,
	"NCR Growth Area": 15,
	"NCR Influence": 20,
	"Satellite Town": 15,
	"Emerging Market": 20,
	"New Capital": 20,
	"Growth Corridor": 15,
	"Airport Zone": 15,
	"Expressway Corridor": 20,
	"Industrial/IT Hub": 10,
	"Industrial/IT": 10,
	"Industrial Town": 20,
	"Residential Hub": 10,
	"Residential/Commercial": 10,
	"Commercial Center": 10,
	"Commercial Market": 5,
	"Tier-2 City": 20,
	"Education Hub": 15,
	"Education City": 15,
	"Education Town": 20,
	"Mining City": 25,
	"Brass City": 25,
	"Silver City": 15,
	"Heritage City": 15,
	"Heritage Town": 25,
	"Heritage/Tourism": 20,
	"Heritage/Education": 20,
	"Heritage/IT Corridor": 10,
	"Temple City": 20,
	"Temple Town": 25,
	"Cultural Capital": 15,
	"Orange City": 10,
	"Gateway City": 20,
	"Manchester of South": 10,
	"Tourism Hub": 25,
	"Tourism Capital": 20,
	"Tourism Spot": 30,
	"Tourism Town": 30,
	"Tourism Island": 35,
	"Tourism Premium": 25,
	"Tourism/Industrial": 20,
	"Tourism/Religious": 25,
	"Premium Tourism": 25,
	"Religious/Tourism Hub": 20,
	"Religious/Tourism": 25,
	"Religious/Emerging": 25,
	"Religious Capital": 15,
	"Religious City": 20,
	"Religious Town": 25,
	"Hill Station": 30,
	"Hill Station/Tourism": 30,
	"Yoga/Tourism Capital": 25,
	"Beach Town": 30,
	"Coastal Town": 30,
	"Eco Township": 25,
	"Summer Capital": 25,
	"Winter Capital": 20,
	"Border Town": 40,
	"UT Capital": 15,
	"Union Territory Capital": 10,
	"Tier-3 Town": 35,
	"Smart City": 10,
}
