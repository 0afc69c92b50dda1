// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/citypath/core"

// seedCities are listed by decreasing importance; insertion order matters
// for tie-breaks in network analysis.
var seedCities = []core.City{
	{ID: "Mumbai", Lat: 19.0760, Lon: 72.8777, Population: 12442373},
	{ID: "Delhi", Lat: 28.7041, Lon: 77.1025, Population: 11034555},
	{ID: "Bangalore", Lat: 12.9716, Lon: 77.5946, Population: 8443675},
	{ID: "Hyderabad", Lat: 17.3850, Lon: 78.4867, Population: 6731790},
	{ID: "Chennai", Lat: 13.0827, Lon: 80.2707, Population: 4646732},
	{ID: "Kolkata", Lat: 22.5726, Lon: 88.3639, Population: 4496694},
	{ID: "Pune", Lat: 18.5204, Lon: 73.8567, Population: 3124458},
	{ID: "Ahmedabad", Lat: 23.0225, Lon: 72.5714, Population: 5577940},
	{ID: "Jaipur", Lat: 26.9124, Lon: 75.7873, Population: 3046163},
	{ID: "Surat", Lat: 21.1702, Lon: 72.8311, Population: 4467797},
	{ID: "Lucknow", Lat: 26.8467, Lon: 80.9462, Population: 2817105},
	{ID: "Kanpur", Lat: 26.4499, Lon: 80.3319, Population: 2765348},
	{ID: "Nagpur", Lat: 21.1458, Lon: 79.0882, Population: 2405665},
	{ID: "Indore", Lat: 22.7196, Lon: 75.8577, Population: 1964086},
	{ID: "Thane", Lat: 19.2183, Lon: 72.9781, Population: 1841488},
	{ID: "Bhopal", Lat: 23.2599, Lon: 77.4126, Population: 1798218},
	{ID: "Visakhapatnam", Lat: 17.6868, Lon: 83.2185, Population: 1728128},
	{ID: "Pimpri-Chinchwad", Lat: 18.6298, Lon: 73.7997, Population: 1727692},
	{ID: "Patna", Lat: 25.5941, Lon: 85.1376, Population: 1684222},
	{ID: "Vadodara", Lat: 22.3072, Lon: 73.1812, Population: 1670806},
}

// seedRoutes: distances in km, times in hours. Air legs carry flight time,
// rail and road legs the scheduled travel time.
var seedRoutes = []core.Route{
	{From: "Mumbai", To: "Delhi", Distance: 1154, Time: 2, Mode: core.ModeAir},
	{From: "Mumbai", To: "Bangalore", Distance: 983, Time: 1.8, Mode: core.ModeAir},
	{From: "Mumbai", To: "Hyderabad", Distance: 707, Time: 1.5, Mode: core.ModeAir},
	{From: "Mumbai", To: "Chennai", Distance: 1038, Time: 1.9, Mode: core.ModeAir},
	{From: "Mumbai", To: "Kolkata", Distance: 1688, Time: 2.5, Mode: core.ModeAir},
	{From: "Delhi", To: "Bangalore", Distance: 1786, Time: 2.8, Mode: core.ModeAir},
	{From: "Delhi", To: "Hyderabad", Distance: 1292, Time: 2.2, Mode: core.ModeAir},
	{From: "Delhi", To: "Chennai", Distance: 1804, Time: 2.9, Mode: core.ModeAir},
	{From: "Delhi", To: "Kolkata", Distance: 1345, Time: 2.1, Mode: core.ModeAir},
	{From: "Delhi", To: "Jaipur", Distance: 268, Time: 3, Mode: core.ModeRail},
	{From: "Delhi", To: "Lucknow", Distance: 497, Time: 5.5, Mode: core.ModeRail},
	{From: "Delhi", To: "Kanpur", Distance: 432, Time: 4.8, Mode: core.ModeRail},
	{From: "Delhi", To: "Bhopal", Distance: 619, Time: 1.4, Mode: core.ModeAir},
	{From: "Delhi", To: "Patna", Distance: 885, Time: 1.8, Mode: core.ModeAir},
	{From: "Bangalore", To: "Hyderabad", Distance: 569, Time: 1.2, Mode: core.ModeAir},
	{From: "Bangalore", To: "Chennai", Distance: 347, Time: 3.9, Mode: core.ModeRail},
	{From: "Bangalore", To: "Pune", Distance: 750, Time: 1.3, Mode: core.ModeAir},
	{From: "Hyderabad", To: "Chennai", Distance: 626, Time: 1.1, Mode: core.ModeAir},
	{From: "Hyderabad", To: "Visakhapatnam", Distance: 671, Time: 1.3, Mode: core.ModeAir},
	{From: "Chennai", To: "Kolkata", Distance: 1359, Time: 2.3, Mode: core.ModeAir},
	{From: "Chennai", To: "Visakhapatnam", Distance: 800, Time: 1.5, Mode: core.ModeAir},
	{From: "Kolkata", To: "Patna", Distance: 532, Time: 1.1, Mode: core.ModeAir},
	{From: "Kolkata", To: "Visakhapatnam", Distance: 883, Time: 1.7, Mode: core.ModeAir},
	{From: "Pune", To: "Mumbai", Distance: 148, Time: 2.5, Mode: core.ModeRoad},
	{From: "Pune", To: "Ahmedabad", Distance: 655, Time: 1.4, Mode: core.ModeAir},
	{From: "Ahmedabad", To: "Mumbai", Distance: 523, Time: 1.1, Mode: core.ModeAir},
	{From: "Ahmedabad", To: "Surat", Distance: 263, Time: 2.9, Mode: core.ModeRail},
	{From: "Ahmedabad", To: "Vadodara", Distance: 110, Time: 1.8, Mode: core.ModeRoad},
	{From: "Jaipur", To: "Ahmedabad", Distance: 650, Time: 1.3, Mode: core.ModeAir},
	{From: "Jaipur", To: "Bhopal", Distance: 598, Time: 1.2, Mode: core.ModeAir},
	{From: "Surat", To: "Mumbai", Distance: 260, Time: 2.9, Mode: core.ModeRail},
	{From: "Surat", To: "Vadodara", Distance: 153, Time: 1.7, Mode: core.ModeRail},
	{From: "Lucknow", To: "Kanpur", Distance: 79, Time: 1.3, Mode: core.ModeRoad},
	{From: "Lucknow", To: "Patna", Distance: 450, Time: 5, Mode: core.ModeRail},
	{From: "Kanpur", To: "Bhopal", Distance: 471, Time: 5.2, Mode: core.ModeRail},
	{From: "Nagpur", To: "Bhopal", Distance: 298, Time: 3.3, Mode: core.ModeRail},
	{From: "Nagpur", To: "Hyderabad", Distance: 500, Time: 1, Mode: core.ModeAir},
	{From: "Indore", To: "Bhopal", Distance: 186, Time: 2.1, Mode: core.ModeRail},
	{From: "Indore", To: "Mumbai", Distance: 585, Time: 1.2, Mode: core.ModeAir},
	{From: "Thane", To: "Mumbai", Distance: 25, Time: 0.4, Mode: core.ModeRoad},
	{From: "Thane", To: "Pune", Distance: 123, Time: 2, Mode: core.ModeRoad},
	{From: "Pimpri-Chinchwad", To: "Pune", Distance: 15, Time: 0.2, Mode: core.ModeRoad},
}
