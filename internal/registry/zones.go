// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package registry

// zoneFactors describes every zone archetype used by locationProfiles.
// Many locations share a factor through their zone type.
var zoneFactors = map[string]ZoneFactor{
	"IT Capital": {
		Description:      "India's premier IT hub",
		GrowthMultiplier: 1.45,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"IT/ITES employment", "Startup ecosystem", "Global connectivity"},
		Forecast:         "Strong sustained growth driven by tech dominance",
	},
	"IT/Corporate Hub": {
		Description:      "Major IT parks & corporate offices",
		GrowthMultiplier: 1.4,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Corporate expansion", "IT parks", "Metro connectivity"},
		Forecast:         "Robust growth with corporate investment",
	},
	"IT/NCR Hub": {
		Description:      "NCR-based IT & corporate zone",
		GrowthMultiplier: 1.4,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"NCR spillover", "IT/ITES", "Expressway connectivity"},
		Forecast:         "High growth with NCR expansion",
	},
	"IT Hub": {
		Description:      "Technology park & IT zone",
		GrowthMultiplier: 1.4,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Tech parks", "IT employment", "Urban infra"},
		Forecast:         "Strong growth with digital economy",
	},
	"IT/Tech Hub": {
		Description:      "Technology & startup driven area",
		GrowthMultiplier: 1.42,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Tech companies", "Startups", "Skilled workforce"},
		Forecast:         "Exceptional growth in tech boom",
	},
	"IT City": {
		Description:      "Planned IT city with tech infra",
		GrowthMultiplier: 1.38,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"IT SEZ", "Planned development", "Tech workforce"},
		Forecast:         "Consistent tech sector growth",
	},
	"IT Corridor": {
		Description:      "Extended IT corridor",
		GrowthMultiplier: 1.38,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Highway connectivity", "IT parks", "Residential demand"},
		Forecast:         "Rapid growth as corridor matures",
	},
	"IT/Education Hub": {
		Description:      "Education + IT zone",
		GrowthMultiplier: 1.35,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Universities", "IT companies", "Students"},
		Forecast:         "Steady education & tech growth",
	},
	"Financial Capital": {
		Description:      "India's financial nerve center",
		GrowthMultiplier: 1.2,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"BFSI sector", "Corporate HQs", "Port & trade"},
		Forecast:         "Stable premium, limited supply",
	},
	"National Capital": {
		Description:      "Seat of Indian government",
		GrowthMultiplier: 1.18,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Government offices", "Diplomatic enclave", "Heritage"},
		Forecast:         "Steady appreciation",
	},
	"Metro City": {
		Description:      "Major metro with diversified economy",
		GrowthMultiplier: 1.3,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Diversified economy", "Metro rail", "Healthcare"},
		Forecast:         "Balanced growth",
	},
	"Commercial Hub": {
		Description:      "Major commercial center",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Trade & commerce", "Market infra", "Connectivity"},
		Forecast:         "Consistent demand-driven growth",
	},
	"State Capital": {
		Description:      "State administrative capital",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Government offices", "Admin hub", "Healthcare"},
		Forecast:         "Steady administrative growth",
	},
	"New Capital": {
		Description:      "Newly designated capital under development",
		GrowthMultiplier: 1.55,
		RiskLevel:        "High",
		KeyDrivers:       []string{"Capital development", "Govt investment", "New infra"},
		Forecast:         "Very high potential, govt dependent",
	},
	"Industrial Hub": {
		Description:      "Manufacturing & production center",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Manufacturing", "Industrial SEZ", "Employment"},
		Forecast:         "Growth tied to Make in India",
	},
	"Industrial City": {
		Description:      "City with major industrial base",
		GrowthMultiplier: 1.2,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Heavy industry", "Manufacturing", "Housing"},
		Forecast:         "Moderate industrial growth",
	},
	"Industrial Town": {
		Description:      "Town centered around industry",
		GrowthMultiplier: 1.18,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Local industry", "Employment", "Small business"},
		Forecast:         "Growth depends on policy",
	},
	"Industrial/IT Hub": {
		Description:      "Mixed industrial & IT zone",
		GrowthMultiplier: 1.32,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Industry + IT", "Mixed economy", "Connectivity"},
		Forecast:         "Strong dual-driver growth",
	},
	"Industrial/IT": {
		Description:      "Combined industrial & tech zone",
		GrowthMultiplier: 1.3,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Manufacturing", "IT parks", "Metro proximity"},
		Forecast:         "Solid diversified growth",
	},
	"Planned City": {
		Description:      "Master-planned urban development",
		GrowthMultiplier: 1.35,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Urban planning", "Modern infra", "Green spaces"},
		Forecast:         "Strong organized appreciation",
	},
	"Smart City/SEZ": {
		Description:      "SEZ or Smart City mission project",
		GrowthMultiplier: 1.5,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Govt smart city funds", "SEZ incentives", "Tech infra"},
		Forecast:         "Rapid govt-backed growth",
	},
	"Smart City": {
		Description:      "Smart City mission project",
		GrowthMultiplier: 1.38,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Smart city funds", "Digital infra", "Modern planning"},
		Forecast:         "Good govt-backed modernization",
	},
	"Emerging Market": {
		Description:      "Rapidly developing area",
		GrowthMultiplier: 1.45,
		RiskLevel:        "Medium-High",
		KeyDrivers:       []string{"Population influx", "New projects", "Affordable entry"},
		Forecast:         "Highest upside with some risk",
	},
	"Religious/Tourism Hub": {
		Description:      "Major religious/tourism destination",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Pilgrim traffic", "Tourism revenue", "Hotels"},
		Forecast:         "Steady tourism growth",
	},
	"Religious/Tourism": {
		Description:      "Religious pilgrimage & tourism",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Religious tourism", "Seasonal demand", "Govt investment"},
		Forecast:         "Pilgrimage circuit growth",
	},
	"Religious/Emerging": {
		Description:      "Religious town under rapid development",
		GrowthMultiplier: 1.55,
		RiskLevel:        "Medium-High",
		KeyDrivers:       []string{"Temple development", "Govt projects", "Tourism growth"},
		Forecast:         "Exceptional temple town potential",
	},
	"Religious Capital": {
		Description:      "India's spiritual capital",
		GrowthMultiplier: 1.3,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Religious significance", "Tourism infra", "Govt projects"},
		Forecast:         "Strong Kashi corridor effect",
	},
	"Religious City": {
		Description:      "City of religious significance",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Pilgrimage", "Temple towns", "Govt investment"},
		Forecast:         "Moderate religious tourism growth",
	},
	"Religious Town": {
		Description:      "Town centered around temples",
		GrowthMultiplier: 1.2,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Pilgrimage demand", "Festivals", "Heritage"},
		Forecast:         "Stable pilgrim footfall",
	},
	"Heritage City": {
		Description:      "Rich cultural & historical heritage",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Heritage tourism", "Cultural events", "Restoration"},
		Forecast:         "Steady heritage growth",
	},
	"Heritage/Tourism": {
		Description:      "Heritage + tourism combined",
		GrowthMultiplier: 1.24,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Heritage sites", "Tourism infra", "Cultural appeal"},
		Forecast:         "Cultural tourism push",
	},
	"Heritage/Education": {
		Description:      "Heritage town with universities",
		GrowthMultiplier: 1.18,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"University town", "Heritage value", "Culture"},
		Forecast:         "Moderate stable growth",
	},
	"Heritage/IT Corridor": {
		Description:      "Heritage area with IT development",
		GrowthMultiplier: 1.28,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Heritage tourism", "IT expansion", "Coast"},
		Forecast:         "Tourism + tech dual drivers",
	},
	"Heritage Town": {
		Description:      "Town with historical significance",
		GrowthMultiplier: 1.15,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Monuments", "Tourism", "Cultural value"},
		Forecast:         "Slow steady appreciation",
	},
	"Tourism Hub": {
		Description:      "Major tourist destination",
		GrowthMultiplier: 1.28,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Tourist footfall", "Hotels", "Adventure/leisure"},
		Forecast:         "Tourism expansion growth",
	},
	"Tourism Capital": {
		Description:      "Primary tourism gateway",
		GrowthMultiplier: 1.3,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"International tourism", "Adventure", "Spiritual tourism"},
		Forecast:         "Strong global tourist growth",
	},
	"Tourism Spot": {
		Description:      "Specific tourist attraction",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Natural beauty", "Tourist infra", "Seasonal demand"},
		Forecast:         "Moderate tourism growth",
	},
	"Tourism Town": {
		Description:      "Small tourism-driven town",
		GrowthMultiplier: 1.2,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Tourist amenities", "Natural beauty", "Access"},
		Forecast:         "Steady connectivity growth",
	},
	"Tourism Island": {
		Description:      "Island tourism destination",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Beach tourism", "Eco-tourism", "Limited supply"},
		Forecast:         "Premium constrained growth",
	},
	"Tourism Premium": {
		Description:      "Premium tourism location",
		GrowthMultiplier: 1.28,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Premium tourism", "Resorts", "Natural beauty"},
		Forecast:         "Strong premium segment",
	},
	"Tourism/Industrial": {
		Description:      "Tourism + industrial zone",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Tourism", "Industry", "Mixed use"},
		Forecast:         "Balanced dual growth",
	},
	"Tourism/Religious": {
		Description:      "Tourism + religious destination",
		GrowthMultiplier: 1.24,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Pilgrimage", "Tourism", "Heritage"},
		Forecast:         "Cultural tourism growth",
	},
	"Premium Tourism": {
		Description:      "High-end beach/resort zone",
		GrowthMultiplier: 1.3,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"International tourism", "Resorts", "Beaches"},
		Forecast:         "Premium hotspot appreciation",
	},
	"Premium Residential": {
		Description:      "High-end residential area",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"HNI demand", "Luxury amenities", "Location premium"},
		Forecast:         "Steady HNI appreciation",
	},
	"Premium Commercial": {
		Description:      "Premium commercial zone",
		GrowthMultiplier: 1.15,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Prime location", "Corporate demand", "Limited supply"},
		Forecast:         "Stable premium returns",
	},
	"Tier-1 City": {
		Description:      "Major city with good infra",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Diversified economy", "Infrastructure", "Healthcare"},
		Forecast:         "Consistent urban growth",
	},
	"Tier-2 City": {
		Description:      "Growing city improving infra",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Urbanization", "Govt schemes", "Affordable land"},
		Forecast:         "Good tier-2 investment potential",
	},
	"Tier-3 Town": {
		Description:      "Smaller town with basic infra",
		GrowthMultiplier: 1.18,
		RiskLevel:        "Medium-High",
		KeyDrivers:       []string{"Affordable prices", "Local economy", "Connectivity"},
		Forecast:         "Moderate project-dependent growth",
	},
	"Port City": {
		Description:      "Coastal port city",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Port trade", "Logistics", "Sagarmala"},
		Forecast:         "Maritime development growth",
	},
	"Satellite Town": {
		Description:      "Town near major city",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Metro spillover", "Affordable", "Connectivity"},
		Forecast:         "Parent city expansion growth",
	},
	"NCR Satellite": {
		Description:      "NCR satellite city",
		GrowthMultiplier: 1.3,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"NCR expansion", "Expressway", "Affordable NCR"},
		Forecast:         "Strong NCR expansion growth",
	},
	"NCR Growth Area": {
		Description:      "High-growth NCR corridor",
		GrowthMultiplier: 1.38,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Expressway", "Metro expansion", "NCR demand"},
		Forecast:         "Rapid NCR infra growth",
	},
	"NCR City": {
		Description:      "Major NCR city near Delhi",
		GrowthMultiplier: 1.28,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Delhi proximity", "Industrial base", "Metro"},
		Forecast:         "Solid NCR ecosystem growth",
	},
	"NCR Influence": {
		Description:      "NCR proximity benefit area",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"NCR proximity", "Highway", "Affordability"},
		Forecast:         "Gradual NCR influence growth",
	},
	"Sub-City": {
		Description:      "Planned sub-city in metro",
		GrowthMultiplier: 1.28,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Metro connectivity", "Planned development", "Affordable"},
		Forecast:         "Good metro expansion growth",
	},
	"Residential Hub": {
		Description:      "Major residential area",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Housing demand", "Social infra", "Metro"},
		Forecast:         "Steady demand-driven growth",
	},
	"Residential/Commercial": {
		Description:      "Mixed residential & commercial",
		GrowthMultiplier: 1.24,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Mixed use", "Commercial activity", "Residential"},
		Forecast:         "Balanced diversified growth",
	},
	"Metro Suburb": {
		Description:      "Metro city suburb",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Metro expansion", "Affordable metro", "Infra"},
		Forecast:         "Growth with metro rail extension",
	},
	"Navi Mumbai Ext.": {
		Description:      "Navi Mumbai extension near airport",
		GrowthMultiplier: 1.4,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Navi Mumbai Airport", "CIDCO", "Trans-Harbour Link"},
		Forecast:         "Very high airport-driven growth",
	},
	"Commercial Market": {
		Description:      "Traditional commercial market",
		GrowthMultiplier: 1.18,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Retail trade", "Established market", "Footfall"},
		Forecast:         "Stable limited supply",
	},
	"Commercial Center": {
		Description:      "Regional commercial center",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Trade hub", "Commerce", "Business"},
		Forecast:         "Moderate commercial growth",
	},
	"Mining City": {
		Description:      "Mining & mineral extraction city",
		GrowthMultiplier: 1.18,
		RiskLevel:        "Medium-High",
		KeyDrivers:       []string{"Mining", "Energy", "Industrial demand"},
		Forecast:         "Mining sector tied growth",
	},
	"Education Hub": {
		Description:      "City of educational institutions",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Students", "Coaching", "Academics"},
		Forecast:         "Stable education growth",
	},
	"Education City": {
		Description:      "Academic institutions city",
		GrowthMultiplier: 1.2,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Universities", "Students", "Research"},
		Forecast:         "Steady moderate growth",
	},
	"Education Town": {
		Description:      "Town with academic campus",
		GrowthMultiplier: 1.18,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Academic institution", "Student housing", "Research"},
		Forecast:         "Moderate stable growth",
	},
	"Gateway City": {
		Description:      "Gateway to larger region",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Transit hub", "Strategic location", "Trade route"},
		Forecast:         "Connectivity improvement growth",
	},
	"Silver City": {
		Description:      "Historic silver filigree city",
		GrowthMultiplier: 1.2,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Heritage", "Local industry", "Twin city"},
		Forecast:         "Moderate twin city growth",
	},
	"Orange City": {
		Description:      "Central India's major city (Nagpur)",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Central location", "MIHAN SEZ", "Expressway"},
		Forecast:         "Strong expressway project growth",
	},
	"Temple City": {
		Description:      "City famous for temples",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Temple tourism", "Heritage", "Local economy"},
		Forecast:         "Stable cultural tourism growth",
	},
	"Temple Town": {
		Description:      "Town around major temple",
		GrowthMultiplier: 1.18,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Pilgrimage", "Festivals", "Heritage"},
		Forecast:         "Steady religious tourism",
	},
	"Cultural Capital": {
		Description:      "Cultural capital with arts & festivals",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Cultural events", "Pooram", "Tradition"},
		Forecast:         "Moderate cultural growth",
	},
	"Manchester of South": {
		Description:      "South India's textile & mfg hub",
		GrowthMultiplier: 1.3,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Textile industry", "Manufacturing", "IT"},
		Forecast:         "Strong industry + IT growth",
	},
	"Yoga/Tourism Capital": {
		Description:      "World yoga & adventure hub",
		GrowthMultiplier: 1.28,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Yoga tourism", "Adventure sports", "International visitors"},
		Forecast:         "Global wellness tourism growth",
	},
	"Summer Capital": {
		Description:      "J&K summer capital",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Medium-High",
		KeyDrivers:       []string{"Tourism", "Govt activity", "Dal Lake"},
		Forecast:         "High post-370 potential",
	},
	"Winter Capital": {
		Description:      "J&K winter capital",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Military", "Govt offices", "Transit hub"},
		Forecast:         "Steady connectivity growth",
	},
	"Hill Station": {
		Description:      "Mountain retreat & tourism",
		GrowthMultiplier: 1.2,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Tourism", "Second homes", "Climate appeal"},
		Forecast:         "Premium limited supply growth",
	},
	"Hill Station/Tourism": {
		Description:      "Hill station with tourism economy",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Tea plantations", "Tourism", "Climate"},
		Forecast:         "Wellness & eco-tourism growth",
	},
	"Beach Town": {
		Description:      "Coastal beach tourism town",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Beach tourism", "Weekend getaway", "Resorts"},
		Forecast:         "Domestic tourism boom growth",
	},
	"Coastal Town": {
		Description:      "Coastal fishing & tourism town",
		GrowthMultiplier: 1.18,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Coastal economy", "Tourism potential", "Fishing"},
		Forecast:         "Moderate tourism growth",
	},
	"Eco Township": {
		Description:      "Eco-friendly planned township",
		GrowthMultiplier: 1.2,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Sustainable living", "International community", "Eco-tourism"},
		Forecast:         "Niche steady appreciation",
	},
	"Brass City": {
		Description:      "Brassware & handicraft city",
		GrowthMultiplier: 1.15,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Handicraft exports", "Local industry", "Trade"},
		Forecast:         "Moderate local industry growth",
	},
	"Border Town": {
		Description:      "International border town",
		GrowthMultiplier: 1.15,
		RiskLevel:        "High",
		KeyDrivers:       []string{"Defense spending", "Strategic importance", "Limited growth"},
		Forecast:         "Constrained but strategic",
	},
	"Airport Zone": {
		Description:      "Area around major airport",
		GrowthMultiplier: 1.45,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Airport development", "Logistics", "Hospitality"},
		Forecast:         "Very high airport-driven growth",
	},
	"Growth Corridor": {
		Description:      "High-growth development corridor",
		GrowthMultiplier: 1.38,
		RiskLevel:        "Medium",
		KeyDrivers:       []string{"Road connectivity", "New developments", "Metro"},
		Forecast:         "Strong corridor development",
	},
	"Expressway Corridor": {
		Description:      "Development along expressway",
		GrowthMultiplier: 1.48,
		RiskLevel:        "Medium-High",
		KeyDrivers:       []string{"Expressway access", "Film city/Airport", "Logistics"},
		Forecast:         "Explosive expressway growth",
	},
	"UT Capital": {
		Description:      "Union Territory capital",
		GrowthMultiplier: 1.22,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Admin center", "Govt investment", "Limited area"},
		Forecast:         "Moderate central govt growth",
	},
	"Union Territory Capital": {
		Description:      "UT capital serving dual states",
		GrowthMultiplier: 1.25,
		RiskLevel:        "Low",
		KeyDrivers:       []string{"Planned city", "Admin center", "Quality of life"},
		Forecast:         "Stable planned city growth",
	},
	"Twin City": {
		Description:      "Twin city in metro area",
		GrowthMultiplier: 1.3,
		RiskLevel:        "Low-Medium",
		KeyDrivers:       []string{"Metro connectivity", "Twin city synergy", "Commerce"},
		Forecast:         "Strong aligned city growth",
	},
}
