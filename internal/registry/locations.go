// PlotWise - India Land Rate Analytics and Forecasting
// Copyright 2026 PlotWise Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/plotwise/plotwise

package registry

// locationProfiles is the generative registry for every supported location:
// base rate (INR/sqft), nominal annual growth percent, coordinates, zone
// archetype, and base infrastructure score. Order is significant: the series
// generator walks this slice, so generation output is ordered by construction.
var locationProfiles = []LocationProfile{
	{Name: "Visakhapatnam, Andhra Pradesh", City: "Visakhapatnam", State: "Andhra Pradesh", BaseRate: 4200, GrowthPct: 9.5, Latitude: 17.6868, Longitude: 83.2185, ZoneType: "Commercial Hub", InfraScore: 78},
	{Name: "Vijayawada, Andhra Pradesh", City: "Vijayawada", State: "Andhra Pradesh", BaseRate: 3800, GrowthPct: 10.2, Latitude: 16.5062, Longitude: 80.648, ZoneType: "Emerging Market", InfraScore: 74},
	{Name: "Amaravati, Andhra Pradesh", City: "Amaravati", State: "Andhra Pradesh", BaseRate: 2800, GrowthPct: 14.0, Latitude: 16.5131, Longitude: 80.515, ZoneType: "New Capital", InfraScore: 65},
	{Name: "Guntur, Andhra Pradesh", City: "Guntur", State: "Andhra Pradesh", BaseRate: 2200, GrowthPct: 8.5, Latitude: 16.3067, Longitude: 80.4365, ZoneType: "Tier-2 City", InfraScore: 62},
	{Name: "Tirupati, Andhra Pradesh", City: "Tirupati", State: "Andhra Pradesh", BaseRate: 3500, GrowthPct: 9.0, Latitude: 13.6288, Longitude: 79.4192, ZoneType: "Religious/Tourism Hub", InfraScore: 70},
	{Name: "Nellore, Andhra Pradesh", City: "Nellore", State: "Andhra Pradesh", BaseRate: 1800, GrowthPct: 7.5, Latitude: 14.4426, Longitude: 79.9865, ZoneType: "Tier-3 Town", InfraScore: 55},
	{Name: "Kakinada, Andhra Pradesh", City: "Kakinada", State: "Andhra Pradesh", BaseRate: 2000, GrowthPct: 8.0, Latitude: 16.9891, Longitude: 82.2475, ZoneType: "Port City", InfraScore: 60},
	{Name: "Rajahmundry, Andhra Pradesh", City: "Rajahmundry", State: "Andhra Pradesh", BaseRate: 2400, GrowthPct: 8.2, Latitude: 17.0005, Longitude: 81.804, ZoneType: "Tier-2 City", InfraScore: 63},
	{Name: "Kurnool, Andhra Pradesh", City: "Kurnool", State: "Andhra Pradesh", BaseRate: 1500, GrowthPct: 7.0, Latitude: 15.8281, Longitude: 78.0373, ZoneType: "Tier-3 Town", InfraScore: 52},
	{Name: "Anantapur, Andhra Pradesh", City: "Anantapur", State: "Andhra Pradesh", BaseRate: 1200, GrowthPct: 6.5, Latitude: 14.6819, Longitude: 77.6006, ZoneType: "Tier-3 Town", InfraScore: 48},
	{Name: "Itanagar, Arunachal Pradesh", City: "Itanagar", State: "Arunachal Pradesh", BaseRate: 1800, GrowthPct: 7.5, Latitude: 27.0844, Longitude: 93.6053, ZoneType: "State Capital", InfraScore: 45},
	{Name: "Naharlagun, Arunachal Pradesh", City: "Naharlagun", State: "Arunachal Pradesh", BaseRate: 1400, GrowthPct: 6.8, Latitude: 27.1045, Longitude: 93.6942, ZoneType: "Satellite Town", InfraScore: 40},
	{Name: "Pasighat, Arunachal Pradesh", City: "Pasighat", State: "Arunachal Pradesh", BaseRate: 900, GrowthPct: 6.0, Latitude: 28.067, Longitude: 95.3269, ZoneType: "Tier-3 Town", InfraScore: 35},
	{Name: "Tawang, Arunachal Pradesh", City: "Tawang", State: "Arunachal Pradesh", BaseRate: 800, GrowthPct: 7.0, Latitude: 27.586, Longitude: 91.8597, ZoneType: "Tourism Hub", InfraScore: 32},
	{Name: "Guwahati, Assam", City: "Guwahati", State: "Assam", BaseRate: 3500, GrowthPct: 10.0, Latitude: 26.1445, Longitude: 91.7362, ZoneType: "Commercial Hub", InfraScore: 72},
	{Name: "Dibrugarh, Assam", City: "Dibrugarh", State: "Assam", BaseRate: 1800, GrowthPct: 7.5, Latitude: 27.4728, Longitude: 94.912, ZoneType: "Tier-2 City", InfraScore: 55},
	{Name: "Silchar, Assam", City: "Silchar", State: "Assam", BaseRate: 1500, GrowthPct: 7.0, Latitude: 24.8333, Longitude: 92.7789, ZoneType: "Tier-2 City", InfraScore: 50},
	{Name: "Jorhat, Assam", City: "Jorhat", State: "Assam", BaseRate: 1400, GrowthPct: 6.5, Latitude: 26.7509, Longitude: 94.2037, ZoneType: "Tier-3 Town", InfraScore: 48},
	{Name: "Tezpur, Assam", City: "Tezpur", State: "Assam", BaseRate: 1200, GrowthPct: 6.8, Latitude: 26.6338, Longitude: 92.8001, ZoneType: "Tier-3 Town", InfraScore: 46},
	{Name: "Nagaon, Assam", City: "Nagaon", State: "Assam", BaseRate: 1000, GrowthPct: 6.0, Latitude: 26.35, Longitude: 92.684, ZoneType: "Tier-3 Town", InfraScore: 42},
	{Name: "Patna, Bihar", City: "Patna", State: "Bihar", BaseRate: 3800, GrowthPct: 9.5, Latitude: 25.6093, Longitude: 85.1376, ZoneType: "State Capital", InfraScore: 68},
	{Name: "Gaya, Bihar", City: "Gaya", State: "Bihar", BaseRate: 1800, GrowthPct: 7.5, Latitude: 24.7955, Longitude: 84.9994, ZoneType: "Religious/Tourism Hub", InfraScore: 52},
	{Name: "Muzaffarpur, Bihar", City: "Muzaffarpur", State: "Bihar", BaseRate: 1500, GrowthPct: 7.0, Latitude: 26.1197, Longitude: 85.391, ZoneType: "Tier-2 City", InfraScore: 48},
	{Name: "Bhagalpur, Bihar", City: "Bhagalpur", State: "Bihar", BaseRate: 1400, GrowthPct: 6.8, Latitude: 25.2425, Longitude: 86.9842, ZoneType: "Tier-2 City", InfraScore: 46},
	{Name: "Darbhanga, Bihar", City: "Darbhanga", State: "Bihar", BaseRate: 1200, GrowthPct: 6.5, Latitude: 26.1542, Longitude: 85.8918, ZoneType: "Tier-3 Town", InfraScore: 44},
	{Name: "Purnia, Bihar", City: "Purnia", State: "Bihar", BaseRate: 1000, GrowthPct: 7.2, Latitude: 25.7771, Longitude: 87.4753, ZoneType: "Emerging Market", InfraScore: 42},
	{Name: "Begusarai, Bihar", City: "Begusarai", State: "Bihar", BaseRate: 900, GrowthPct: 6.0, Latitude: 25.4182, Longitude: 86.1272, ZoneType: "Tier-3 Town", InfraScore: 40},
	{Name: "Arrah, Bihar", City: "Arrah", State: "Bihar", BaseRate: 1100, GrowthPct: 6.5, Latitude: 25.5541, Longitude: 84.6603, ZoneType: "Tier-3 Town", InfraScore: 42},
	{Name: "Raipur, Chhattisgarh", City: "Raipur", State: "Chhattisgarh", BaseRate: 2800, GrowthPct: 9.0, Latitude: 21.2514, Longitude: 81.6296, ZoneType: "State Capital", InfraScore: 68},
	{Name: "Bhilai, Chhattisgarh", City: "Bhilai", State: "Chhattisgarh", BaseRate: 2200, GrowthPct: 7.5, Latitude: 21.2167, Longitude: 81.4167, ZoneType: "Industrial Hub", InfraScore: 65},
	{Name: "Bilaspur, Chhattisgarh", City: "Bilaspur", State: "Chhattisgarh", BaseRate: 1800, GrowthPct: 7.0, Latitude: 22.0796, Longitude: 82.1391, ZoneType: "Tier-2 City", InfraScore: 58},
	{Name: "Durg, Chhattisgarh", City: "Durg", State: "Chhattisgarh", BaseRate: 1600, GrowthPct: 6.8, Latitude: 21.1904, Longitude: 81.2849, ZoneType: "Tier-2 City", InfraScore: 56},
	{Name: "Korba, Chhattisgarh", City: "Korba", State: "Chhattisgarh", BaseRate: 1200, GrowthPct: 6.5, Latitude: 22.3595, Longitude: 82.7501, ZoneType: "Industrial Town", InfraScore: 50},
	{Name: "Jagdalpur, Chhattisgarh", City: "Jagdalpur", State: "Chhattisgarh", BaseRate: 900, GrowthPct: 6.0, Latitude: 19.0903, Longitude: 82.0208, ZoneType: "Tier-3 Town", InfraScore: 40},
	{Name: "Panaji, Goa", City: "Panaji", State: "Goa", BaseRate: 8500, GrowthPct: 8.5, Latitude: 15.4909, Longitude: 73.8278, ZoneType: "State Capital", InfraScore: 80},
	{Name: "Margao, Goa", City: "Margao", State: "Goa", BaseRate: 6500, GrowthPct: 8.0, Latitude: 15.2832, Longitude: 73.9862, ZoneType: "Commercial Hub", InfraScore: 75},
	{Name: "Vasco da Gama, Goa", City: "Vasco da Gama", State: "Goa", BaseRate: 5500, GrowthPct: 7.5, Latitude: 15.398, Longitude: 73.8113, ZoneType: "Port City", InfraScore: 72},
	{Name: "Mapusa, Goa", City: "Mapusa", State: "Goa", BaseRate: 5000, GrowthPct: 7.8, Latitude: 15.5935, Longitude: 73.8101, ZoneType: "Tourism Hub", InfraScore: 70},
	{Name: "Calangute, Goa", City: "Calangute", State: "Goa", BaseRate: 9000, GrowthPct: 9.0, Latitude: 15.5437, Longitude: 73.7553, ZoneType: "Premium Tourism", InfraScore: 78},
	{Name: "Ahmedabad, Gujarat", City: "Ahmedabad", State: "Gujarat", BaseRate: 5500, GrowthPct: 10.5, Latitude: 23.0225, Longitude: 72.5714, ZoneType: "Metro City", InfraScore: 82},
	{Name: "Surat, Gujarat", City: "Surat", State: "Gujarat", BaseRate: 4200, GrowthPct: 11.0, Latitude: 21.1702, Longitude: 72.8311, ZoneType: "Industrial Hub", InfraScore: 78},
	{Name: "Vadodara, Gujarat", City: "Vadodara", State: "Gujarat", BaseRate: 3500, GrowthPct: 9.0, Latitude: 22.3072, Longitude: 73.1812, ZoneType: "Tier-1 City", InfraScore: 75},
	{Name: "Rajkot, Gujarat", City: "Rajkot", State: "Gujarat", BaseRate: 3000, GrowthPct: 8.5, Latitude: 22.3039, Longitude: 70.8022, ZoneType: "Tier-1 City", InfraScore: 72},
	{Name: "Gandhinagar, Gujarat", City: "Gandhinagar", State: "Gujarat", BaseRate: 4800, GrowthPct: 10.0, Latitude: 23.2156, Longitude: 72.6369, ZoneType: "State Capital", InfraScore: 80},
	{Name: "Bhavnagar, Gujarat", City: "Bhavnagar", State: "Gujarat", BaseRate: 2200, GrowthPct: 7.0, Latitude: 21.7645, Longitude: 72.1519, ZoneType: "Tier-2 City", InfraScore: 60},
	{Name: "Junagadh, Gujarat", City: "Junagadh", State: "Gujarat", BaseRate: 1800, GrowthPct: 6.5, Latitude: 21.5222, Longitude: 70.4579, ZoneType: "Tier-2 City", InfraScore: 55},
	{Name: "Anand, Gujarat", City: "Anand", State: "Gujarat", BaseRate: 2500, GrowthPct: 8.0, Latitude: 22.5645, Longitude: 72.9289, ZoneType: "Tier-2 City", InfraScore: 62},
	{Name: "GIFT City, Gujarat", City: "GIFT City", State: "Gujarat", BaseRate: 7500, GrowthPct: 14.0, Latitude: 23.1547, Longitude: 72.6813, ZoneType: "Smart City/SEZ", InfraScore: 90},
	{Name: "Jamnagar, Gujarat", City: "Jamnagar", State: "Gujarat", BaseRate: 2000, GrowthPct: 7.0, Latitude: 22.4707, Longitude: 70.0577, ZoneType: "Industrial Hub", InfraScore: 58},
	{Name: "Morbi, Gujarat", City: "Morbi", State: "Gujarat", BaseRate: 1500, GrowthPct: 7.5, Latitude: 22.812, Longitude: 70.837, ZoneType: "Industrial Town", InfraScore: 52},
	{Name: "Dwarka, Gujarat", City: "Dwarka", State: "Gujarat", BaseRate: 1800, GrowthPct: 8.0, Latitude: 22.2394, Longitude: 68.9678, ZoneType: "Religious/Tourism Hub", InfraScore: 48},
	{Name: "Gurugram, Haryana", City: "Gurugram", State: "Haryana", BaseRate: 12000, GrowthPct: 11.0, Latitude: 28.4595, Longitude: 77.0266, ZoneType: "IT/Corporate Hub", InfraScore: 88},
	{Name: "Faridabad, Haryana", City: "Faridabad", State: "Haryana", BaseRate: 5500, GrowthPct: 8.5, Latitude: 28.4089, Longitude: 77.3178, ZoneType: "Industrial City", InfraScore: 75},
	{Name: "Panchkula, Haryana", City: "Panchkula", State: "Haryana", BaseRate: 5000, GrowthPct: 8.0, Latitude: 30.6942, Longitude: 76.8606, ZoneType: "Satellite Town", InfraScore: 78},
	{Name: "Ambala, Haryana", City: "Ambala", State: "Haryana", BaseRate: 3200, GrowthPct: 7.5, Latitude: 30.3782, Longitude: 76.7767, ZoneType: "Tier-2 City", InfraScore: 65},
	{Name: "Karnal, Haryana", City: "Karnal", State: "Haryana", BaseRate: 2800, GrowthPct: 8.0, Latitude: 29.6857, Longitude: 76.9905, ZoneType: "Tier-2 City", InfraScore: 62},
	{Name: "Panipat, Haryana", City: "Panipat", State: "Haryana", BaseRate: 2500, GrowthPct: 7.5, Latitude: 29.3909, Longitude: 76.9635, ZoneType: "Industrial Town", InfraScore: 60},
	{Name: "Hisar, Haryana", City: "Hisar", State: "Haryana", BaseRate: 2200, GrowthPct: 7.0, Latitude: 29.1492, Longitude: 75.7217, ZoneType: "Tier-2 City", InfraScore: 58},
	{Name: "Rohtak, Haryana", City: "Rohtak", State: "Haryana", BaseRate: 2800, GrowthPct: 7.5, Latitude: 28.8955, Longitude: 76.6066, ZoneType: "Tier-2 City", InfraScore: 60},
	{Name: "Sonipat, Haryana", City: "Sonipat", State: "Haryana", BaseRate: 3500, GrowthPct: 9.0, Latitude: 28.9931, Longitude: 77.0151, ZoneType: "NCR Satellite", InfraScore: 68},
	{Name: "Manesar, Haryana", City: "Manesar", State: "Haryana", BaseRate: 8000, GrowthPct: 10.5, Latitude: 28.3594, Longitude: 76.9348, ZoneType: "Industrial/IT Hub", InfraScore: 82},
	{Name: "Shimla, Himachal Pradesh", City: "Shimla", State: "Himachal Pradesh", BaseRate: 5500, GrowthPct: 7.5, Latitude: 31.1048, Longitude: 77.1734, ZoneType: "State Capital", InfraScore: 70},
	{Name: "Dharamshala, Himachal Pradesh", City: "Dharamshala", State: "Himachal Pradesh", BaseRate: 4000, GrowthPct: 8.5, Latitude: 32.219, Longitude: 76.3234, ZoneType: "Tourism Hub", InfraScore: 60},
	{Name: "Manali, Himachal Pradesh", City: "Manali", State: "Himachal Pradesh", BaseRate: 5000, GrowthPct: 9.0, Latitude: 32.2396, Longitude: 77.1887, ZoneType: "Premium Tourism", InfraScore: 58},
	{Name: "Solan, Himachal Pradesh", City: "Solan", State: "Himachal Pradesh", BaseRate: 3000, GrowthPct: 7.0, Latitude: 30.9045, Longitude: 77.0967, ZoneType: "Tier-3 Town", InfraScore: 55},
	{Name: "Kullu, Himachal Pradesh", City: "Kullu", State: "Himachal Pradesh", BaseRate: 3500, GrowthPct: 7.5, Latitude: 31.9579, Longitude: 77.1095, ZoneType: "Tourism Hub", InfraScore: 52},
	{Name: "Mandi, Himachal Pradesh", City: "Mandi", State: "Himachal Pradesh", BaseRate: 2200, GrowthPct: 6.5, Latitude: 31.7088, Longitude: 76.932, ZoneType: "Tier-3 Town", InfraScore: 48},
	{Name: "Kasauli, Himachal Pradesh", City: "Kasauli", State: "Himachal Pradesh", BaseRate: 4500, GrowthPct: 8.0, Latitude: 30.8984, Longitude: 76.9656, ZoneType: "Hill Station", InfraScore: 55},
	{Name: "Ranchi, Jharkhand", City: "Ranchi", State: "Jharkhand", BaseRate: 3200, GrowthPct: 8.5, Latitude: 23.3441, Longitude: 85.3096, ZoneType: "State Capital", InfraScore: 65},
	{Name: "Jamshedpur, Jharkhand", City: "Jamshedpur", State: "Jharkhand", BaseRate: 3500, GrowthPct: 8.0, Latitude: 22.8046, Longitude: 86.2029, ZoneType: "Industrial Hub", InfraScore: 70},
	{Name: "Dhanbad, Jharkhand", City: "Dhanbad", State: "Jharkhand", BaseRate: 2500, GrowthPct: 7.5, Latitude: 23.7957, Longitude: 86.4304, ZoneType: "Mining City", InfraScore: 58},
	{Name: "Bokaro, Jharkhand", City: "Bokaro", State: "Jharkhand", BaseRate: 2000, GrowthPct: 7.0, Latitude: 23.6693, Longitude: 86.1511, ZoneType: "Industrial Town", InfraScore: 60},
	{Name: "Deoghar, Jharkhand", City: "Deoghar", State: "Jharkhand", BaseRate: 1500, GrowthPct: 7.0, Latitude: 24.4764, Longitude: 86.6944, ZoneType: "Religious Town", InfraScore: 48},
	{Name: "Hazaribagh, Jharkhand", City: "Hazaribagh", State: "Jharkhand", BaseRate: 1200, GrowthPct: 6.5, Latitude: 23.9966, Longitude: 85.3637, ZoneType: "Tier-3 Town", InfraScore: 45},
	{Name: "Bengaluru, Karnataka", City: "Bengaluru", State: "Karnataka", BaseRate: 8500, GrowthPct: 12.0, Latitude: 12.9716, Longitude: 77.5946, ZoneType: "IT Capital", InfraScore: 90},
	{Name: "Mysuru, Karnataka", City: "Mysuru", State: "Karnataka", BaseRate: 3800, GrowthPct: 9.0, Latitude: 12.2958, Longitude: 76.6394, ZoneType: "Heritage City", InfraScore: 75},
	{Name: "Mangaluru, Karnataka", City: "Mangaluru", State: "Karnataka", BaseRate: 3500, GrowthPct: 8.5, Latitude: 12.9141, Longitude: 74.856, ZoneType: "Port City", InfraScore: 72},
	{Name: "Hubli-Dharwad, Karnataka", City: "Hubli-Dharwad", State: "Karnataka", BaseRate: 2800, GrowthPct: 8.0, Latitude: 15.3647, Longitude: 75.124, ZoneType: "Tier-2 City", InfraScore: 65},
	{Name: "Belgaum (Belagavi), Karnataka", City: "Belgaum (Belagavi)", State: "Karnataka", BaseRate: 2500, GrowthPct: 7.5, Latitude: 15.8497, Longitude: 74.4977, ZoneType: "Tier-2 City", InfraScore: 62},
	{Name: "Gulbarga (Kalaburagi), Karnataka", City: "Gulbarga (Kalaburagi)", State: "Karnataka", BaseRate: 1800, GrowthPct: 7.0, Latitude: 17.3297, Longitude: 76.8343, ZoneType: "Tier-2 City", InfraScore: 55},
	{Name: "Shimoga, Karnataka", City: "Shimoga", State: "Karnataka", BaseRate: 1500, GrowthPct: 6.5, Latitude: 13.9299, Longitude: 75.5681, ZoneType: "Tier-3 Town", InfraScore: 50},
	{Name: "Tumkur, Karnataka", City: "Tumkur", State: "Karnataka", BaseRate: 2000, GrowthPct: 7.5, Latitude: 13.3392, Longitude: 77.1017, ZoneType: "Tier-2 City", InfraScore: 58},
	{Name: "Whitefield, Karnataka", City: "Whitefield", State: "Karnataka", BaseRate: 9500, GrowthPct: 12.5, Latitude: 12.9698, Longitude: 77.75, ZoneType: "IT/Tech Hub", InfraScore: 88},
	{Name: "Electronic City, Karnataka", City: "Electronic City", State: "Karnataka", BaseRate: 8000, GrowthPct: 12.0, Latitude: 12.839, Longitude: 77.677, ZoneType: "IT/Tech Hub", InfraScore: 86},
	{Name: "Udupi, Karnataka", City: "Udupi", State: "Karnataka", BaseRate: 2200, GrowthPct: 7.0, Latitude: 13.3409, Longitude: 74.7421, ZoneType: "Tier-3 Town", InfraScore: 55},
	{Name: "Davangere, Karnataka", City: "Davangere", State: "Karnataka", BaseRate: 1600, GrowthPct: 6.5, Latitude: 14.4664, Longitude: 75.9218, ZoneType: "Tier-3 Town", InfraScore: 50},
	{Name: "Kochi, Kerala", City: "Kochi", State: "Kerala", BaseRate: 6500, GrowthPct: 9.5, Latitude: 9.9312, Longitude: 76.2673, ZoneType: "Commercial Hub", InfraScore: 82},
	{Name: "Thiruvananthapuram, Kerala", City: "Thiruvananthapuram", State: "Kerala", BaseRate: 5000, GrowthPct: 8.0, Latitude: 8.5241, Longitude: 76.9366, ZoneType: "State Capital", InfraScore: 78},
	{Name: "Kozhikode (Calicut), Kerala", City: "Kozhikode (Calicut)", State: "Kerala", BaseRate: 4000, GrowthPct: 8.0, Latitude: 11.2588, Longitude: 75.7804, ZoneType: "Tier-1 City", InfraScore: 72},
	{Name: "Thrissur, Kerala", City: "Thrissur", State: "Kerala", BaseRate: 3500, GrowthPct: 7.5, Latitude: 10.5276, Longitude: 76.2144, ZoneType: "Cultural Capital", InfraScore: 70},
	{Name: "Kollam, Kerala", City: "Kollam", State: "Kerala", BaseRate: 2800, GrowthPct: 7.0, Latitude: 8.8932, Longitude: 76.6141, ZoneType: "Tier-2 City", InfraScore: 65},
	{Name: "Kannur, Kerala", City: "Kannur", State: "Kerala", BaseRate: 3000, GrowthPct: 7.5, Latitude: 11.8745, Longitude: 75.3704, ZoneType: "Tier-2 City", InfraScore: 66},
	{Name: "Alappuzha, Kerala", City: "Alappuzha", State: "Kerala", BaseRate: 3200, GrowthPct: 7.0, Latitude: 9.4981, Longitude: 76.3388, ZoneType: "Tourism Hub", InfraScore: 64},
	{Name: "Palakkad, Kerala", City: "Palakkad", State: "Kerala", BaseRate: 2500, GrowthPct: 7.0, Latitude: 10.7867, Longitude: 76.6548, ZoneType: "Tier-2 City", InfraScore: 60},
	{Name: "Kottayam, Kerala", City: "Kottayam", State: "Kerala", BaseRate: 3000, GrowthPct: 7.0, Latitude: 9.5916, Longitude: 76.5222, ZoneType: "Tier-2 City", InfraScore: 65},
	{Name: "Munnar, Kerala", City: "Munnar", State: "Kerala", BaseRate: 4500, GrowthPct: 8.5, Latitude: 10.0889, Longitude: 77.0595, ZoneType: "Hill Station/Tourism", InfraScore: 55},
	{Name: "Bhopal, Madhya Pradesh", City: "Bhopal", State: "Madhya Pradesh", BaseRate: 3200, GrowthPct: 8.5, Latitude: 23.2599, Longitude: 77.4126, ZoneType: "State Capital", InfraScore: 70},
	{Name: "Indore, Madhya Pradesh", City: "Indore", State: "Madhya Pradesh", BaseRate: 3800, GrowthPct: 10.0, Latitude: 22.7196, Longitude: 75.8577, ZoneType: "Commercial Hub", InfraScore: 75},
	{Name: "Gwalior, Madhya Pradesh", City: "Gwalior", State: "Madhya Pradesh", BaseRate: 2200, GrowthPct: 7.0, Latitude: 26.2183, Longitude: 78.1828, ZoneType: "Heritage City", InfraScore: 58},
	{Name: "Jabalpur, Madhya Pradesh", City: "Jabalpur", State: "Madhya Pradesh", BaseRate: 2000, GrowthPct: 7.5, Latitude: 23.1815, Longitude: 79.9864, ZoneType: "Tier-2 City", InfraScore: 60},
	{Name: "Ujjain, Madhya Pradesh", City: "Ujjain", State: "Madhya Pradesh", BaseRate: 1800, GrowthPct: 7.0, Latitude: 23.1765, Longitude: 75.7885, ZoneType: "Religious City", InfraScore: 55},
	{Name: "Sagar, Madhya Pradesh", City: "Sagar", State: "Madhya Pradesh", BaseRate: 1200, GrowthPct: 6.0, Latitude: 23.8388, Longitude: 78.7378, ZoneType: "Tier-3 Town", InfraScore: 45},
	{Name: "Dewas, Madhya Pradesh", City: "Dewas", State: "Madhya Pradesh", BaseRate: 1500, GrowthPct: 6.5, Latitude: 22.9623, Longitude: 76.0508, ZoneType: "Industrial Town", InfraScore: 50},
	{Name: "Satna, Madhya Pradesh", City: "Satna", State: "Madhya Pradesh", BaseRate: 1000, GrowthPct: 6.0, Latitude: 24.5805, Longitude: 80.8322, ZoneType: "Tier-3 Town", InfraScore: 42},
	{Name: "Rewa, Madhya Pradesh", City: "Rewa", State: "Madhya Pradesh", BaseRate: 1100, GrowthPct: 6.0, Latitude: 24.5373, Longitude: 81.3042, ZoneType: "Tier-3 Town", InfraScore: 44},
	{Name: "Mumbai, Maharashtra", City: "Mumbai", State: "Maharashtra", BaseRate: 25000, GrowthPct: 8.0, Latitude: 19.076, Longitude: 72.8777, ZoneType: "Financial Capital", InfraScore: 95},
	{Name: "Pune, Maharashtra", City: "Pune", State: "Maharashtra", BaseRate: 7500, GrowthPct: 10.5, Latitude: 18.5204, Longitude: 73.8567, ZoneType: "IT/Education Hub", InfraScore: 85},
	{Name: "Navi Mumbai, Maharashtra", City: "Navi Mumbai", State: "Maharashtra", BaseRate: 8000, GrowthPct: 11.0, Latitude: 19.033, Longitude: 73.0297, ZoneType: "Planned City", InfraScore: 82},
	{Name: "Thane, Maharashtra", City: "Thane", State: "Maharashtra", BaseRate: 7000, GrowthPct: 9.5, Latitude: 19.2183, Longitude: 72.9781, ZoneType: "Metro Suburb", InfraScore: 80},
	{Name: "Nagpur, Maharashtra", City: "Nagpur", State: "Maharashtra", BaseRate: 3500, GrowthPct: 8.5, Latitude: 21.1458, Longitude: 79.0882, ZoneType: "Orange City", InfraScore: 72},
	{Name: "Nashik, Maharashtra", City: "Nashik", State: "Maharashtra", BaseRate: 3000, GrowthPct: 8.0, Latitude: 20.0059, Longitude: 73.7798, ZoneType: "Tier-1 City", InfraScore: 68},
	{Name: "Aurangabad (Sambhajinagar), Maharashtra", City: "Aurangabad (Sambhajinagar)", State: "Maharashtra", BaseRate: 2800, GrowthPct: 8.5, Latitude: 19.8762, Longitude: 75.3433, ZoneType: "Industrial Hub", InfraScore: 65},
	{Name: "Kolhapur, Maharashtra", City: "Kolhapur", State: "Maharashtra", BaseRate: 2500, GrowthPct: 7.5, Latitude: 16.705, Longitude: 74.2433, ZoneType: "Tier-2 City", InfraScore: 62},
	{Name: "Solapur, Maharashtra", City: "Solapur", State: "Maharashtra", BaseRate: 2000, GrowthPct: 7.0, Latitude: 17.6599, Longitude: 75.9064, ZoneType: "Tier-2 City", InfraScore: 58},
	{Name: "Lonavala, Maharashtra", City: "Lonavala", State: "Maharashtra", BaseRate: 6000, GrowthPct: 9.0, Latitude: 18.7546, Longitude: 73.4062, ZoneType: "Hill Station", InfraScore: 65},
	{Name: "Sangli, Maharashtra", City: "Sangli", State: "Maharashtra", BaseRate: 1800, GrowthPct: 6.5, Latitude: 16.8524, Longitude: 74.5815, ZoneType: "Tier-3 Town", InfraScore: 52},
	{Name: "Ratnagiri, Maharashtra", City: "Ratnagiri", State: "Maharashtra", BaseRate: 2200, GrowthPct: 7.0, Latitude: 16.9944, Longitude: 73.3, ZoneType: "Coastal Town", InfraScore: 50},
	{Name: "Panvel, Maharashtra", City: "Panvel", State: "Maharashtra", BaseRate: 5500, GrowthPct: 12.0, Latitude: 18.9894, Longitude: 73.1175, ZoneType: "Navi Mumbai Ext.", InfraScore: 75},
	{Name: "Kalyan-Dombivli, Maharashtra", City: "Kalyan-Dombivli", State: "Maharashtra", BaseRate: 5000, GrowthPct: 9.0, Latitude: 19.2403, Longitude: 73.1305, ZoneType: "Metro Suburb", InfraScore: 72},
	{Name: "Imphal, Manipur", City: "Imphal", State: "Manipur", BaseRate: 2200, GrowthPct: 7.5, Latitude: 24.817, Longitude: 93.9368, ZoneType: "State Capital", InfraScore: 50},
	{Name: "Thoubal, Manipur", City: "Thoubal", State: "Manipur", BaseRate: 1000, GrowthPct: 5.5, Latitude: 24.6302, Longitude: 94.0162, ZoneType: "Tier-3 Town", InfraScore: 35},
	{Name: "Bishnupur, Manipur", City: "Bishnupur", State: "Manipur", BaseRate: 900, GrowthPct: 5.0, Latitude: 24.63, Longitude: 93.77, ZoneType: "Heritage Town", InfraScore: 32},
	{Name: "Shillong, Meghalaya", City: "Shillong", State: "Meghalaya", BaseRate: 3500, GrowthPct: 8.0, Latitude: 25.5788, Longitude: 91.8933, ZoneType: "State Capital", InfraScore: 60},
	{Name: "Tura, Meghalaya", City: "Tura", State: "Meghalaya", BaseRate: 1200, GrowthPct: 6.0, Latitude: 25.5147, Longitude: 90.2097, ZoneType: "Tier-3 Town", InfraScore: 38},
	{Name: "Cherrapunji, Meghalaya", City: "Cherrapunji", State: "Meghalaya", BaseRate: 1500, GrowthPct: 7.5, Latitude: 25.2726, Longitude: 91.7323, ZoneType: "Tourism Spot", InfraScore: 35},
	{Name: "Aizawl, Mizoram", City: "Aizawl", State: "Mizoram", BaseRate: 2500, GrowthPct: 7.0, Latitude: 23.7271, Longitude: 92.7176, ZoneType: "State Capital", InfraScore: 48},
	{Name: "Lunglei, Mizoram", City: "Lunglei", State: "Mizoram", BaseRate: 1000, GrowthPct: 5.5, Latitude: 22.8834, Longitude: 92.7312, ZoneType: "Tier-3 Town", InfraScore: 32},
	{Name: "Kohima, Nagaland", City: "Kohima", State: "Nagaland", BaseRate: 2800, GrowthPct: 7.0, Latitude: 25.6751, Longitude: 94.1086, ZoneType: "State Capital", InfraScore: 48},
	{Name: "Dimapur, Nagaland", City: "Dimapur", State: "Nagaland", BaseRate: 2200, GrowthPct: 7.5, Latitude: 25.9042, Longitude: 93.7266, ZoneType: "Commercial Center", InfraScore: 52},
	{Name: "Mokokchung, Nagaland", City: "Mokokchung", State: "Nagaland", BaseRate: 1000, GrowthPct: 5.5, Latitude: 26.3222, Longitude: 94.5203, ZoneType: "Tier-3 Town", InfraScore: 35},
	{Name: "Bhubaneswar, Odisha", City: "Bhubaneswar", State: "Odisha", BaseRate: 3800, GrowthPct: 9.5, Latitude: 20.2961, Longitude: 85.8245, ZoneType: "State Capital", InfraScore: 75},
	{Name: "Cuttack, Odisha", City: "Cuttack", State: "Odisha", BaseRate: 2800, GrowthPct: 7.5, Latitude: 20.4625, Longitude: 85.883, ZoneType: "Silver City", InfraScore: 65},
	{Name: "Puri, Odisha", City: "Puri", State: "Odisha", BaseRate: 3000, GrowthPct: 8.5, Latitude: 19.7983, Longitude: 85.8249, ZoneType: "Religious/Tourism", InfraScore: 62},
	{Name: "Rourkela, Odisha", City: "Rourkela", State: "Odisha", BaseRate: 2000, GrowthPct: 7.0, Latitude: 22.2604, Longitude: 84.8536, ZoneType: "Industrial City", InfraScore: 58},
	{Name: "Berhampur, Odisha", City: "Berhampur", State: "Odisha", BaseRate: 1500, GrowthPct: 6.5, Latitude: 19.315, Longitude: 84.7941, ZoneType: "Tier-2 City", InfraScore: 52},
	{Name: "Sambalpur, Odisha", City: "Sambalpur", State: "Odisha", BaseRate: 1400, GrowthPct: 6.5, Latitude: 21.4669, Longitude: 83.9756, ZoneType: "Tier-2 City", InfraScore: 50},
	{Name: "Chandigarh, Punjab", City: "Chandigarh", State: "Punjab", BaseRate: 8000, GrowthPct: 8.5, Latitude: 30.7333, Longitude: 76.7794, ZoneType: "Union Territory Capital", InfraScore: 85},
	{Name: "Ludhiana, Punjab", City: "Ludhiana", State: "Punjab", BaseRate: 4500, GrowthPct: 8.0, Latitude: 30.901, Longitude: 75.8573, ZoneType: "Industrial Hub", InfraScore: 72},
	{Name: "Amritsar, Punjab", City: "Amritsar", State: "Punjab", BaseRate: 4000, GrowthPct: 8.5, Latitude: 31.634, Longitude: 74.8723, ZoneType: "Heritage/Tourism", InfraScore: 70},
	{Name: "Jalandhar, Punjab", City: "Jalandhar", State: "Punjab", BaseRate: 3200, GrowthPct: 7.5, Latitude: 31.326, Longitude: 75.5762, ZoneType: "Tier-1 City", InfraScore: 68},
	{Name: "Mohali, Punjab", City: "Mohali", State: "Punjab", BaseRate: 6500, GrowthPct: 10.0, Latitude: 30.7046, Longitude: 76.7179, ZoneType: "IT City", InfraScore: 80},
	{Name: "Patiala, Punjab", City: "Patiala", State: "Punjab", BaseRate: 2800, GrowthPct: 7.0, Latitude: 30.3398, Longitude: 76.3869, ZoneType: "Tier-2 City", InfraScore: 62},
	{Name: "Bathinda, Punjab", City: "Bathinda", State: "Punjab", BaseRate: 2200, GrowthPct: 7.0, Latitude: 30.211, Longitude: 74.9455, ZoneType: "Tier-2 City", InfraScore: 55},
	{Name: "Pathankot, Punjab", City: "Pathankot", State: "Punjab", BaseRate: 2000, GrowthPct: 6.5, Latitude: 32.2643, Longitude: 75.6522, ZoneType: "Border Town", InfraScore: 50},
	{Name: "Zirakpur, Punjab", City: "Zirakpur", State: "Punjab", BaseRate: 5500, GrowthPct: 11.0, Latitude: 30.6424, Longitude: 76.8173, ZoneType: "NCR Growth Area", InfraScore: 75},
	{Name: "Jaipur, Rajasthan", City: "Jaipur", State: "Rajasthan", BaseRate: 4500, GrowthPct: 10.0, Latitude: 26.9124, Longitude: 75.7873, ZoneType: "State Capital", InfraScore: 78},
	{Name: "Jodhpur, Rajasthan", City: "Jodhpur", State: "Rajasthan", BaseRate: 2800, GrowthPct: 8.0, Latitude: 26.2389, Longitude: 73.0243, ZoneType: "Heritage City", InfraScore: 65},
	{Name: "Udaipur, Rajasthan", City: "Udaipur", State: "Rajasthan", BaseRate: 3500, GrowthPct: 9.0, Latitude: 24.5854, Longitude: 73.7125, ZoneType: "Tourism Capital", InfraScore: 70},
	{Name: "Kota, Rajasthan", City: "Kota", State: "Rajasthan", BaseRate: 2500, GrowthPct: 8.5, Latitude: 25.2138, Longitude: 75.8648, ZoneType: "Education Hub", InfraScore: 62},
	{Name: "Ajmer, Rajasthan", City: "Ajmer", State: "Rajasthan", BaseRate: 2200, GrowthPct: 7.5, Latitude: 26.4499, Longitude: 74.6399, ZoneType: "Religious City", InfraScore: 58},
	{Name: "Bikaner, Rajasthan", City: "Bikaner", State: "Rajasthan", BaseRate: 1800, GrowthPct: 7.0, Latitude: 28.0229, Longitude: 73.3119, ZoneType: "Heritage Town", InfraScore: 52},
	{Name: "Jaisalmer, Rajasthan", City: "Jaisalmer", State: "Rajasthan", BaseRate: 2000, GrowthPct: 8.0, Latitude: 26.9157, Longitude: 70.9083, ZoneType: "Tourism Hub", InfraScore: 48},
	{Name: "Pushkar, Rajasthan", City: "Pushkar", State: "Rajasthan", BaseRate: 2500, GrowthPct: 8.5, Latitude: 26.4898, Longitude: 74.5511, ZoneType: "Tourism/Religious", InfraScore: 50},
	{Name: "Mount Abu, Rajasthan", City: "Mount Abu", State: "Rajasthan", BaseRate: 3000, GrowthPct: 7.5, Latitude: 24.5926, Longitude: 72.7156, ZoneType: "Hill Station", InfraScore: 52},
	{Name: "Alwar, Rajasthan", City: "Alwar", State: "Rajasthan", BaseRate: 2000, GrowthPct: 7.5, Latitude: 27.553, Longitude: 76.6346, ZoneType: "NCR Influence", InfraScore: 55},
	{Name: "Bhilwara, Rajasthan", City: "Bhilwara", State: "Rajasthan", BaseRate: 1500, GrowthPct: 6.5, Latitude: 25.3407, Longitude: 74.6313, ZoneType: "Tier-3 Town", InfraScore: 48},
	{Name: "Sikar, Rajasthan", City: "Sikar", State: "Rajasthan", BaseRate: 1400, GrowthPct: 6.5, Latitude: 27.6094, Longitude: 75.1398, ZoneType: "Tier-3 Town", InfraScore: 45},
	{Name: "Gangtok, Sikkim", City: "Gangtok", State: "Sikkim", BaseRate: 4000, GrowthPct: 8.0, Latitude: 27.3389, Longitude: 88.6065, ZoneType: "State Capital", InfraScore: 58},
	{Name: "Namchi, Sikkim", City: "Namchi", State: "Sikkim", BaseRate: 1800, GrowthPct: 6.5, Latitude: 27.1667, Longitude: 88.35, ZoneType: "Tourism Town", InfraScore: 42},
	{Name: "Pelling, Sikkim", City: "Pelling", State: "Sikkim", BaseRate: 2200, GrowthPct: 7.5, Latitude: 27.3, Longitude: 88.2333, ZoneType: "Tourism Hub", InfraScore: 40},
	{Name: "Chennai, Tamil Nadu", City: "Chennai", State: "Tamil Nadu", BaseRate: 8000, GrowthPct: 10.0, Latitude: 13.0827, Longitude: 80.2707, ZoneType: "Metro City", InfraScore: 88},
	{Name: "Coimbatore, Tamil Nadu", City: "Coimbatore", State: "Tamil Nadu", BaseRate: 4500, GrowthPct: 9.5, Latitude: 11.0168, Longitude: 76.9558, ZoneType: "Manchester of South", InfraScore: 78},
	{Name: "Madurai, Tamil Nadu", City: "Madurai", State: "Tamil Nadu", BaseRate: 3000, GrowthPct: 8.0, Latitude: 9.9252, Longitude: 78.1198, ZoneType: "Temple City", InfraScore: 68},
	{Name: "Tiruchirappalli, Tamil Nadu", City: "Tiruchirappalli", State: "Tamil Nadu", BaseRate: 2500, GrowthPct: 7.5, Latitude: 10.7905, Longitude: 78.7047, ZoneType: "Tier-2 City", InfraScore: 65},
	{Name: "Salem, Tamil Nadu", City: "Salem", State: "Tamil Nadu", BaseRate: 2200, GrowthPct: 7.0, Latitude: 11.6643, Longitude: 78.146, ZoneType: "Industrial City", InfraScore: 60},
	{Name: "Tirunelveli, Tamil Nadu", City: "Tirunelveli", State: "Tamil Nadu", BaseRate: 1800, GrowthPct: 6.5, Latitude: 8.7139, Longitude: 77.7567, ZoneType: "Tier-2 City", InfraScore: 55},
	{Name: "Vellore, Tamil Nadu", City: "Vellore", State: "Tamil Nadu", BaseRate: 2000, GrowthPct: 7.0, Latitude: 12.9165, Longitude: 79.1325, ZoneType: "Education Hub", InfraScore: 58},
	{Name: "Erode, Tamil Nadu", City: "Erode", State: "Tamil Nadu", BaseRate: 1800, GrowthPct: 6.5, Latitude: 11.341, Longitude: 77.7172, ZoneType: "Tier-2 City", InfraScore: 55},
	{Name: "Ooty (Udhagamandalam), Tamil Nadu", City: "Ooty (Udhagamandalam)", State: "Tamil Nadu", BaseRate: 5500, GrowthPct: 8.0, Latitude: 11.4102, Longitude: 76.695, ZoneType: "Hill Station", InfraScore: 55},
	{Name: "Mahabalipuram, Tamil Nadu", City: "Mahabalipuram", State: "Tamil Nadu", BaseRate: 3500, GrowthPct: 9.0, Latitude: 12.6269, Longitude: 80.1927, ZoneType: "Heritage/IT Corridor", InfraScore: 62},
	{Name: "OMR Chennai, Tamil Nadu", City: "OMR Chennai", State: "Tamil Nadu", BaseRate: 7500, GrowthPct: 11.5, Latitude: 12.901, Longitude: 80.2279, ZoneType: "IT Corridor", InfraScore: 85},
	{Name: "Hosur, Tamil Nadu", City: "Hosur", State: "Tamil Nadu", BaseRate: 3000, GrowthPct: 10.0, Latitude: 12.7409, Longitude: 77.8253, ZoneType: "Industrial/IT", InfraScore: 68},
	{Name: "Thanjavur, Tamil Nadu", City: "Thanjavur", State: "Tamil Nadu", BaseRate: 1500, GrowthPct: 6.0, Latitude: 10.787, Longitude: 79.1378, ZoneType: "Heritage Town", InfraScore: 50},
	{Name: "Kanchipuram, Tamil Nadu", City: "Kanchipuram", State: "Tamil Nadu", BaseRate: 2200, GrowthPct: 7.5, Latitude: 12.8342, Longitude: 79.7036, ZoneType: "Temple Town", InfraScore: 55},
	{Name: "Hyderabad, Telangana", City: "Hyderabad", State: "Telangana", BaseRate: 7500, GrowthPct: 11.5, Latitude: 17.385, Longitude: 78.4867, ZoneType: "IT/Corporate Hub", InfraScore: 88},
	{Name: "HITEC City, Telangana", City: "HITEC City", State: "Telangana", BaseRate: 9000, GrowthPct: 12.0, Latitude: 17.4435, Longitude: 78.3772, ZoneType: "IT Hub", InfraScore: 90},
	{Name: "Warangal, Telangana", City: "Warangal", State: "Telangana", BaseRate: 2200, GrowthPct: 8.0, Latitude: 17.9784, Longitude: 79.5941, ZoneType: "Tier-2 City", InfraScore: 60},
	{Name: "Nizamabad, Telangana", City: "Nizamabad", State: "Telangana", BaseRate: 1500, GrowthPct: 7.0, Latitude: 18.6725, Longitude: 78.094, ZoneType: "Tier-2 City", InfraScore: 52},
	{Name: "Karimnagar, Telangana", City: "Karimnagar", State: "Telangana", BaseRate: 1800, GrowthPct: 7.5, Latitude: 18.4386, Longitude: 79.1288, ZoneType: "Tier-2 City", InfraScore: 55},
	{Name: "Secunderabad, Telangana", City: "Secunderabad", State: "Telangana", BaseRate: 7000, GrowthPct: 10.0, Latitude: 17.4399, Longitude: 78.4983, ZoneType: "Twin City", InfraScore: 85},
	{Name: "Shamshabad, Telangana", City: "Shamshabad", State: "Telangana", BaseRate: 5500, GrowthPct: 13.0, Latitude: 17.2473, Longitude: 78.4269, ZoneType: "Airport Zone", InfraScore: 78},
	{Name: "Medchal, Telangana", City: "Medchal", State: "Telangana", BaseRate: 4000, GrowthPct: 11.0, Latitude: 17.6298, Longitude: 78.481, ZoneType: "Growth Corridor", InfraScore: 70},
	{Name: "Agartala, Tripura", City: "Agartala", State: "Tripura", BaseRate: 2500, GrowthPct: 7.5, Latitude: 23.8315, Longitude: 91.2868, ZoneType: "State Capital", InfraScore: 52},
	{Name: "Udaipur, Tripura", City: "Udaipur", State: "Tripura", BaseRate: 1000, GrowthPct: 5.5, Latitude: 23.5339, Longitude: 91.484, ZoneType: "Tier-3 Town", InfraScore: 35},
	{Name: "Noida, Uttar Pradesh", City: "Noida", State: "Uttar Pradesh", BaseRate: 8500, GrowthPct: 11.0, Latitude: 28.5355, Longitude: 77.391, ZoneType: "IT/NCR Hub", InfraScore: 85},
	{Name: "Greater Noida, Uttar Pradesh", City: "Greater Noida", State: "Uttar Pradesh", BaseRate: 5000, GrowthPct: 12.0, Latitude: 28.4744, Longitude: 77.504, ZoneType: "Planned City", InfraScore: 78},
	{Name: "Lucknow, Uttar Pradesh", City: "Lucknow", State: "Uttar Pradesh", BaseRate: 4000, GrowthPct: 9.5, Latitude: 26.8467, Longitude: 80.9462, ZoneType: "State Capital", InfraScore: 75},
	{Name: "Agra, Uttar Pradesh", City: "Agra", State: "Uttar Pradesh", BaseRate: 3000, GrowthPct: 8.0, Latitude: 27.1767, Longitude: 78.0081, ZoneType: "Heritage/Tourism", InfraScore: 65},
	{Name: "Varanasi, Uttar Pradesh", City: "Varanasi", State: "Uttar Pradesh", BaseRate: 3500, GrowthPct: 9.0, Latitude: 25.3176, Longitude: 82.9739, ZoneType: "Religious Capital", InfraScore: 68},
	{Name: "Prayagraj (Allahabad), Uttar Pradesh", City: "Prayagraj (Allahabad)", State: "Uttar Pradesh", BaseRate: 2500, GrowthPct: 7.5, Latitude: 25.4358, Longitude: 81.8463, ZoneType: "Tier-2 City", InfraScore: 62},
	{Name: "Kanpur, Uttar Pradesh", City: "Kanpur", State: "Uttar Pradesh", BaseRate: 2800, GrowthPct: 7.0, Latitude: 26.4499, Longitude: 80.3319, ZoneType: "Industrial City", InfraScore: 65},
	{Name: "Ghaziabad, Uttar Pradesh", City: "Ghaziabad", State: "Uttar Pradesh", BaseRate: 5500, GrowthPct: 9.5, Latitude: 28.6692, Longitude: 77.4538, ZoneType: "NCR City", InfraScore: 78},
	{Name: "Meerut, Uttar Pradesh", City: "Meerut", State: "Uttar Pradesh", BaseRate: 3000, GrowthPct: 7.5, Latitude: 28.9845, Longitude: 77.7064, ZoneType: "Tier-1 City", InfraScore: 65},
	{Name: "Mathura, Uttar Pradesh", City: "Mathura", State: "Uttar Pradesh", BaseRate: 2200, GrowthPct: 8.0, Latitude: 27.4924, Longitude: 77.6737, ZoneType: "Religious Town", InfraScore: 55},
	{Name: "Bareilly, Uttar Pradesh", City: "Bareilly", State: "Uttar Pradesh", BaseRate: 1800, GrowthPct: 6.5, Latitude: 28.367, Longitude: 79.4304, ZoneType: "Tier-2 City", InfraScore: 52},
	{Name: "Aligarh, Uttar Pradesh", City: "Aligarh", State: "Uttar Pradesh", BaseRate: 2000, GrowthPct: 7.0, Latitude: 27.8974, Longitude: 78.088, ZoneType: "Education City", InfraScore: 55},
	{Name: "Moradabad, Uttar Pradesh", City: "Moradabad", State: "Uttar Pradesh", BaseRate: 1500, GrowthPct: 6.5, Latitude: 28.8386, Longitude: 78.7733, ZoneType: "Brass City", InfraScore: 50},
	{Name: "Gorakhpur, Uttar Pradesh", City: "Gorakhpur", State: "Uttar Pradesh", BaseRate: 1800, GrowthPct: 7.5, Latitude: 26.7606, Longitude: 83.3732, ZoneType: "Tier-2 City", InfraScore: 55},
	{Name: "Ayodhya, Uttar Pradesh", City: "Ayodhya", State: "Uttar Pradesh", BaseRate: 2500, GrowthPct: 15.0, Latitude: 26.7922, Longitude: 82.1998, ZoneType: "Religious/Emerging", InfraScore: 55},
	{Name: "Yamuna Expressway, Uttar Pradesh", City: "Yamuna Expressway", State: "Uttar Pradesh", BaseRate: 3500, GrowthPct: 14.0, Latitude: 28.25, Longitude: 77.55, ZoneType: "Expressway Corridor", InfraScore: 72},
	{Name: "Jewar (Noida Airport), Uttar Pradesh", City: "Jewar (Noida Airport)", State: "Uttar Pradesh", BaseRate: 3000, GrowthPct: 16.0, Latitude: 28.1073, Longitude: 77.5552, ZoneType: "Airport Zone", InfraScore: 65},
	{Name: "Dehradun, Uttarakhand", City: "Dehradun", State: "Uttarakhand", BaseRate: 4500, GrowthPct: 9.0, Latitude: 30.3165, Longitude: 78.0322, ZoneType: "State Capital", InfraScore: 72},
	{Name: "Haridwar, Uttarakhand", City: "Haridwar", State: "Uttarakhand", BaseRate: 3200, GrowthPct: 8.5, Latitude: 29.9457, Longitude: 78.1642, ZoneType: "Religious City", InfraScore: 62},
	{Name: "Rishikesh, Uttarakhand", City: "Rishikesh", State: "Uttarakhand", BaseRate: 3800, GrowthPct: 9.0, Latitude: 30.0869, Longitude: 78.2676, ZoneType: "Yoga/Tourism Capital", InfraScore: 60},
	{Name: "Haldwani, Uttarakhand", City: "Haldwani", State: "Uttarakhand", BaseRate: 2500, GrowthPct: 8.0, Latitude: 29.2183, Longitude: 79.513, ZoneType: "Gateway City", InfraScore: 55},
	{Name: "Nainital, Uttarakhand", City: "Nainital", State: "Uttarakhand", BaseRate: 5000, GrowthPct: 7.5, Latitude: 29.3919, Longitude: 79.4542, ZoneType: "Hill Station", InfraScore: 55},
	{Name: "Mussoorie, Uttarakhand", City: "Mussoorie", State: "Uttarakhand", BaseRate: 5500, GrowthPct: 7.0, Latitude: 30.4598, Longitude: 78.0644, ZoneType: "Hill Station", InfraScore: 52},
	{Name: "Rudrapur, Uttarakhand", City: "Rudrapur", State: "Uttarakhand", BaseRate: 2200, GrowthPct: 8.5, Latitude: 28.9737, Longitude: 79.4009, ZoneType: "Industrial Town", InfraScore: 58},
	{Name: "Roorkee, Uttarakhand", City: "Roorkee", State: "Uttarakhand", BaseRate: 2000, GrowthPct: 7.0, Latitude: 29.8543, Longitude: 77.888, ZoneType: "Education Town", InfraScore: 55},
	{Name: "Kolkata, West Bengal", City: "Kolkata", State: "West Bengal", BaseRate: 6500, GrowthPct: 8.5, Latitude: 22.5726, Longitude: 88.3639, ZoneType: "Metro City", InfraScore: 82},
	{Name: "Salt Lake City, West Bengal", City: "Salt Lake City", State: "West Bengal", BaseRate: 7000, GrowthPct: 9.5, Latitude: 22.5803, Longitude: 88.412, ZoneType: "IT Hub", InfraScore: 80},
	{Name: "New Town Rajarhat, West Bengal", City: "New Town Rajarhat", State: "West Bengal", BaseRate: 5500, GrowthPct: 11.0, Latitude: 22.5958, Longitude: 88.4795, ZoneType: "Smart City", InfraScore: 78},
	{Name: "Howrah, West Bengal", City: "Howrah", State: "West Bengal", BaseRate: 4000, GrowthPct: 7.5, Latitude: 22.5958, Longitude: 88.2636, ZoneType: "Industrial City", InfraScore: 72},
	{Name: "Siliguri, West Bengal", City: "Siliguri", State: "West Bengal", BaseRate: 3000, GrowthPct: 8.5, Latitude: 26.7271, Longitude: 88.3953, ZoneType: "Gateway City", InfraScore: 65},
	{Name: "Durgapur, West Bengal", City: "Durgapur", State: "West Bengal", BaseRate: 2200, GrowthPct: 7.5, Latitude: 23.5204, Longitude: 87.3119, ZoneType: "Industrial Hub", InfraScore: 60},
	{Name: "Asansol, West Bengal", City: "Asansol", State: "West Bengal", BaseRate: 1800, GrowthPct: 7.0, Latitude: 23.6888, Longitude: 86.9661, ZoneType: "Industrial City", InfraScore: 55},
	{Name: "Darjeeling, West Bengal", City: "Darjeeling", State: "West Bengal", BaseRate: 4500, GrowthPct: 7.0, Latitude: 27.036, Longitude: 88.2627, ZoneType: "Hill Station", InfraScore: 52},
	{Name: "Kharagpur, West Bengal", City: "Kharagpur", State: "West Bengal", BaseRate: 1500, GrowthPct: 6.5, Latitude: 22.346, Longitude: 87.232, ZoneType: "Education Town", InfraScore: 50},
	{Name: "Shantiniketan, West Bengal", City: "Shantiniketan", State: "West Bengal", BaseRate: 2000, GrowthPct: 7.0, Latitude: 23.6814, Longitude: 87.6855, ZoneType: "Heritage/Education", InfraScore: 48},
	{Name: "Digha, West Bengal", City: "Digha", State: "West Bengal", BaseRate: 1800, GrowthPct: 8.0, Latitude: 21.6274, Longitude: 87.5451, ZoneType: "Beach Town", InfraScore: 45},
	{Name: "New Delhi, Delhi", City: "New Delhi", State: "Delhi", BaseRate: 18000, GrowthPct: 8.5, Latitude: 28.6139, Longitude: 77.209, ZoneType: "National Capital", InfraScore: 95},
	{Name: "South Delhi, Delhi", City: "South Delhi", State: "Delhi", BaseRate: 22000, GrowthPct: 8.0, Latitude: 28.5245, Longitude: 77.2066, ZoneType: "Premium Residential", InfraScore: 92},
	{Name: "Dwarka, Delhi", City: "Dwarka", State: "Delhi", BaseRate: 8500, GrowthPct: 9.5, Latitude: 28.5921, Longitude: 77.046, ZoneType: "Sub-City", InfraScore: 82},
	{Name: "Rohini, Delhi", City: "Rohini", State: "Delhi", BaseRate: 7000, GrowthPct: 8.0, Latitude: 28.7495, Longitude: 77.0565, ZoneType: "Residential Hub", InfraScore: 78},
	{Name: "Connaught Place, Delhi", City: "Connaught Place", State: "Delhi", BaseRate: 30000, GrowthPct: 6.5, Latitude: 28.6315, Longitude: 77.2167, ZoneType: "Premium Commercial", InfraScore: 98},
	{Name: "Saket, Delhi", City: "Saket", State: "Delhi", BaseRate: 15000, GrowthPct: 8.0, Latitude: 28.5244, Longitude: 77.2116, ZoneType: "Residential/Commercial", InfraScore: 88},
	{Name: "Lajpat Nagar, Delhi", City: "Lajpat Nagar", State: "Delhi", BaseRate: 12000, GrowthPct: 7.5, Latitude: 28.57, Longitude: 77.24, ZoneType: "Commercial Market", InfraScore: 82},
	{Name: "Srinagar, Jammu & Kashmir", City: "Srinagar", State: "Jammu & Kashmir", BaseRate: 4500, GrowthPct: 8.0, Latitude: 34.0837, Longitude: 74.7973, ZoneType: "Summer Capital", InfraScore: 60},
	{Name: "Jammu, Jammu & Kashmir", City: "Jammu", State: "Jammu & Kashmir", BaseRate: 3800, GrowthPct: 7.5, Latitude: 32.7266, Longitude: 74.857, ZoneType: "Winter Capital", InfraScore: 62},
	{Name: "Gulmarg, Jammu & Kashmir", City: "Gulmarg", State: "Jammu & Kashmir", BaseRate: 5000, GrowthPct: 9.0, Latitude: 34.0484, Longitude: 74.3805, ZoneType: "Tourism Hub", InfraScore: 48},
	{Name: "Pahalgam, Jammu & Kashmir", City: "Pahalgam", State: "Jammu & Kashmir", BaseRate: 3500, GrowthPct: 8.0, Latitude: 34.0161, Longitude: 75.315, ZoneType: "Tourism Hub", InfraScore: 42},
	{Name: "Leh, Ladakh", City: "Leh", State: "Ladakh", BaseRate: 3500, GrowthPct: 9.0, Latitude: 34.1526, Longitude: 77.5771, ZoneType: "Tourism Capital", InfraScore: 42},
	{Name: "Kargil, Ladakh", City: "Kargil", State: "Ladakh", BaseRate: 1500, GrowthPct: 6.0, Latitude: 34.5539, Longitude: 76.1349, ZoneType: "Border Town", InfraScore: 32},
	{Name: "Puducherry (Pondicherry), Puducherry", City: "Puducherry (Pondicherry)", State: "Puducherry", BaseRate: 5500, GrowthPct: 8.5, Latitude: 11.9416, Longitude: 79.8083, ZoneType: "UT Capital", InfraScore: 70},
	{Name: "Auroville, Puducherry", City: "Auroville", State: "Puducherry", BaseRate: 4000, GrowthPct: 7.5, Latitude: 12.0058, Longitude: 79.8106, ZoneType: "Eco Township", InfraScore: 60},
	{Name: "Port Blair, Andaman & Nicobar", City: "Port Blair", State: "Andaman & Nicobar", BaseRate: 3500, GrowthPct: 7.5, Latitude: 11.6234, Longitude: 92.7265, ZoneType: "UT Capital", InfraScore: 52},
	{Name: "Havelock Island, Andaman & Nicobar", City: "Havelock Island", State: "Andaman & Nicobar", BaseRate: 4000, GrowthPct: 8.5, Latitude: 12.0263, Longitude: 92.9848, ZoneType: "Tourism Premium", InfraScore: 40},
	{Name: "Chandigarh City, Chandigarh", City: "Chandigarh City", State: "Chandigarh", BaseRate: 9000, GrowthPct: 8.5, Latitude: 30.7333, Longitude: 76.7794, ZoneType: "Planned City", InfraScore: 88},
	{Name: "Silvassa, Dadra & Nagar Haveli", City: "Silvassa", State: "Dadra & Nagar Haveli", BaseRate: 2200, GrowthPct: 8.0, Latitude: 20.2766, Longitude: 73.0169, ZoneType: "Industrial Hub", InfraScore: 55},
	{Name: "Daman, Daman & Diu", City: "Daman", State: "Daman & Diu", BaseRate: 2800, GrowthPct: 7.5, Latitude: 20.3974, Longitude: 72.8328, ZoneType: "Tourism/Industrial", InfraScore: 52},
	{Name: "Diu, Daman & Diu", City: "Diu", State: "Daman & Diu", BaseRate: 2000, GrowthPct: 7.0, Latitude: 20.7141, Longitude: 70.9876, ZoneType: "Tourism Town", InfraScore: 45},
	{Name: "Kavaratti, Lakshadweep", City: "Kavaratti", State: "Lakshadweep", BaseRate: 2500, GrowthPct: 7.0, Latitude: 10.5626, Longitude: 72.6369, ZoneType: "UT Capital", InfraScore: 40},
	{Name: "Agatti, Lakshadweep", City: "Agatti", State: "Lakshadweep", BaseRate: 2000, GrowthPct: 7.5, Latitude: 10.8565, Longitude: 72.176, ZoneType: "Tourism Island", InfraScore: 35},
}
