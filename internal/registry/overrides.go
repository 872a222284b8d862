// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package registry

// City-level coastal-zone override. Present entries supersede the state-level
// CoastalZone default: coastal states have many inland cities and vice versa.
var cityCoastalOverride = map[string]bool{
	"Bengaluru, Karnataka": false,
	"Whitefield, Karnataka": false,
	"Electronic City, Karnataka": false,
	"Mysuru, Karnataka": false,
	"Hubli-Dharwad, Karnataka": false,
	"Belgaum (Belagavi), Karnataka": false,
	"Gulbarga (Kalaburagi), Karnataka": false,
	"Shimoga, Karnataka": false,
	"Tumkur, Karnataka": false,
	"Davangere, Karnataka": false,
	"Mangaluru, Karnataka": true,
	"Udupi, Karnataka": true,
	"Pune, Maharashtra": false,
	"Nagpur, Maharashtra": false,
	"Aurangabad (Sambhajinagar), Maharashtra": false,
	"Kolhapur, Maharashtra": false,
	"Solapur, Maharashtra": false,
	"Sangli, Maharashtra": false,
	"Nashik, Maharashtra": false,
	"Lonavala, Maharashtra": false,
	"Mumbai, Maharashtra": true,
	"Navi Mumbai, Maharashtra": true,
	"Thane, Maharashtra": true,
	"Panvel, Maharashtra": true,
	"Kalyan-Dombivli, Maharashtra": false,
	"Ratnagiri, Maharashtra": true,
	"Amaravati, Andhra Pradesh": false,
	"Guntur, Andhra Pradesh": false,
	"Tirupati, Andhra Pradesh": false,
	"Kurnool, Andhra Pradesh": false,
	"Anantapur, Andhra Pradesh": false,
	"Rajahmundry, Andhra Pradesh": false,
	"Visakhapatnam, Andhra Pradesh": true,
	"Nellore, Andhra Pradesh": true,
	"Kakinada, Andhra Pradesh": true,
	"Vijayawada, Andhra Pradesh": false,
	"Chennai, Tamil Nadu": true,
	"OMR Chennai, Tamil Nadu": true,
	"Mahabalipuram, Tamil Nadu": true,
	"Kanchipuram, Tamil Nadu": false,
	"Coimbatore, Tamil Nadu": false,
	"Madurai, Tamil Nadu": false,
	"Tiruchirappalli, Tamil Nadu": false,
	"Salem, Tamil Nadu": false,
	"Tirunelveli, Tamil Nadu": false,
	"Vellore, Tamil Nadu": false,
	"Erode, Tamil Nadu": false,
	"Ooty (Udhagamandalam), Tamil Nadu": false,
	"Hosur, Tamil Nadu": false,
	"Thanjavur, Tamil Nadu": false,
	"Kochi, Kerala": true,
	"Thiruvananthapuram, Kerala": true,
	"Kozhikode (Calicut), Kerala": true,
	"Kollam, Kerala": true,
	"Kannur, Kerala": true,
	"Alappuzha, Kerala": true,
	"Thrissur, Kerala": false,
	"Palakkad, Kerala": false,
	"Kottayam, Kerala": false,
	"Munnar, Kerala": false,
	"Ahmedabad, Gujarat": false,
	"Vadodara, Gujarat": false,
	"Gandhinagar, Gujarat": false,
	"Rajkot, Gujarat": false,
	"Anand, Gujarat": false,
	"GIFT City, Gujarat": false,
	"Morbi, Gujarat": false,
	"Surat, Gujarat": true,
	"Bhavnagar, Gujarat": true,
	"Jamnagar, Gujarat": true,
	"Junagadh, Gujarat": false,
	"Dwarka, Gujarat": true,
	"Bhubaneswar, Odisha": false,
	"Cuttack, Odisha": false,
	"Rourkela, Odisha": false,
	"Sambalpur, Odisha": false,
	"Puri, Odisha": true,
	"Berhampur, Odisha": true,
	"Kolkata, West Bengal": false,
	"Salt Lake City, West Bengal": false,
	"New Town Rajarhat, West Bengal": false,
	"Howrah, West Bengal": false,
	"Siliguri, West Bengal": false,
	"Durgapur, West Bengal": false,
	"Asansol, West Bengal": false,
	"Darjeeling, West Bengal": false,
	"Kharagpur, West Bengal": false,
	"Shantiniketan, West Bengal": false,
	"Digha, West Bengal": true,
}

// City-level tribal-restriction override. Present entries supersede the
// state-level TribalRestriction default.
var cityTribalOverride = map[string]bool{
	"Mumbai, Maharashtra": false,
	"Pune, Maharashtra": false,
	"Navi Mumbai, Maharashtra": false,
	"Thane, Maharashtra": false,
	"Nagpur, Maharashtra": false,
	"Nashik, Maharashtra": false,
	"Aurangabad (Sambhajinagar), Maharashtra": false,
	"Kolhapur, Maharashtra": false,
	"Solapur, Maharashtra": false,
	"Lonavala, Maharashtra": false,
	"Sangli, Maharashtra": false,
	"Ratnagiri, Maharashtra": false,
	"Panvel, Maharashtra": false,
	"Kalyan-Dombivli, Maharashtra": false,
	"Ahmedabad, Gujarat": false,
	"Surat, Gujarat": false,
	"Vadodara, Gujarat": false,
	"Rajkot, Gujarat": false,
	"Gandhinagar, Gujarat": false,
	"Bhavnagar, Gujarat": false,
	"Junagadh, Gujarat": false,
	"Anand, Gujarat": false,
	"GIFT City, Gujarat": false,
	"Jamnagar, Gujarat": false,
	"Morbi, Gujarat": false,
	"Dwarka, Gujarat": false,
	"Kochi, Kerala": false,
	"Thiruvananthapuram, Kerala": false,
	"Kozhikode (Calicut), Kerala": false,
	"Thrissur, Kerala": false,
	"Kollam, Kerala": false,
	"Kannur, Kerala": false,
	"Alappuzha, Kerala": false,
	"Palakkad, Kerala": false,
	"Kottayam, Kerala": false,
	"Munnar, Kerala": true,
	"Chennai, Tamil Nadu": false,
	"OMR Chennai, Tamil Nadu": false,
	"Coimbatore, Tamil Nadu": false,
	"Madurai, Tamil Nadu": false,
	"Tiruchirappalli, Tamil Nadu": false,
	"Salem, Tamil Nadu": false,
	"Tirunelveli, Tamil Nadu": false,
	"Vellore, Tamil Nadu": false,
	"Erode, Tamil Nadu": false,
	"Mahabalipuram, Tamil Nadu": false,
	"Hosur, Tamil Nadu": false,
	"Thanjavur, Tamil Nadu": false,
	"Kanchipuram, Tamil Nadu": false,
	"Ooty (Udhagamandalam), Tamil Nadu": true,
	"Bhubaneswar, Odisha": false,
	"Cuttack, Odisha": false,
	"Puri, Odisha": false,
	"Berhampur, Odisha": false,
	"Kolkata, West Bengal": false,
	"Salt Lake City, West Bengal": false,
	"New Town Rajarhat, West Bengal": false,
	"Howrah, West Bengal": false,
	"Durgapur, West Bengal": false,
	"Asansol, West Bengal": false,
	"Darjeeling, West Bengal": false,
	"Kharagpur, West Bengal": false,
	"Shantiniketan, West Bengal": false,
	"Digha, West Bengal": false,
	"Siliguri, West Bengal": false,
	"Jaipur, Rajasthan": false,
	"Jodhpur, Rajasthan": false,
	"Kota, Rajasthan": false,
	"Ajmer, Rajasthan": false,
	"Bikaner, Rajasthan": false,
	"Jaisalmer, Rajasthan": false,
	"Pushkar, Rajasthan": false,
	"Mount Abu, Rajasthan": true,
	"Alwar, Rajasthan": false,
	"Bhilwara, Rajasthan": false,
	"Sikar, Rajasthan": false,
	"Udaipur, Rajasthan": false,
	"Bhopal, Madhya Pradesh": false,
	"Indore, Madhya Pradesh": false,
	"Gwalior, Madhya Pradesh": false,
	"Jabalpur, Madhya Pradesh": false,
	"Ujjain, Madhya Pradesh": false,
	"Sagar, Madhya Pradesh": false,
	"Dewas, Madhya Pradesh": false,
	"Satna, Madhya Pradesh": false,
	"Rewa, Madhya Pradesh": false,
	"Raipur, Chhattisgarh": false,
	"Bhilai, Chhattisgarh": false,
	"Bilaspur, Chhattisgarh": false,
	"Durg, Chhattisgarh": false,
	"Korba, Chhattisgarh": false,
	"Jagdalpur, Chhattisgarh": true,
	"Ranchi, Jharkhand": false,
	"Jamshedpur, Jharkhand": false,
	"Dhanbad, Jharkhand": false,
	"Bokaro, Jharkhand": false,
	"Guwahati, Assam": false,
	"Dibrugarh, Assam": false,
	"Silchar, Assam": false,
	"Jorhat, Assam": false,
	"Tezpur, Assam": false,
	"Nagaon, Assam": false,
}
