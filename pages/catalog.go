package pages

import "voyagex-front/state"

// Sample content. The app has no content backend yet; every collection
// below stands in for one.

var tips = []string{
	"Visit popular attractions early in the morning to avoid crowds and get the best lighting for photos!",
	"Download offline maps before your trip to navigate without internet connection.",
	"Try local street food - it's often the most authentic and delicious experience!",
	"Use eco-friendly transport options like walking or cycling to explore and reduce your carbon footprint.",
	"Book tickets online in advance to skip long queues at popular tourist spots.",
	"Learn a few basic phrases in the local language - locals appreciate the effort!",
	"Stay hydrated and carry a reusable water bottle to save money and reduce plastic waste.",
	"Check opening hours and weekly closures before visiting museums and attractions.",
}

var attractions = []state.Attraction{
	{
		ID:          1,
		Name:        "Marina Beach",
		Image:       "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=600",
		Category:    "Beach",
		Rating:      4.5,
		Reviews:     2840,
		Price:       "Free",
		Description: "One of the longest urban beaches in the world, perfect for evening walks.",
		Distance:    "2.3 km",
		Crowd:       "High",
	},
	{
		ID:          2,
		Name:        "Kapaleeshwarar Temple",
		Image:       "https://images.unsplash.com/photo-1609952048252-38605246e29a?w=600",
		Category:    "Temple",
		Rating:      4.7,
		Reviews:     1920,
		Price:       "Free",
		Description: "Ancient Dravidian architecture dedicated to Lord Shiva.",
		Distance:    "3.1 km",
		Crowd:       "Moderate",
	},
	{
		ID:          3,
		Name:        "Government Museum",
		Image:       "https://images.unsplash.com/photo-1566127444979-b3d2b3c42f9a?w=600",
		Category:    "Museum",
		Rating:      4.4,
		Reviews:     1560,
		Price:       "₹50",
		Description: "Second oldest museum in India with rich archaeological collections.",
		Distance:    "4.5 km",
		Crowd:       "Low",
	},
	{
		ID:          4,
		Name:        "Besant Nagar Beach",
		Image:       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=600",
		Category:    "Beach",
		Rating:      4.3,
		Reviews:     980,
		Price:       "Free",
		Description: "Popular beach with clean sands and food stalls.",
		Distance:    "5.2 km",
		Crowd:       "Moderate",
	},
	{
		ID:          5,
		Name:        "Fort St. George",
		Image:       "https://images.unsplash.com/photo-1574873786805-e552b6a3d0e1?w=600",
		Category:    "Historical",
		Rating:      4.6,
		Reviews:     2100,
		Price:       "₹25",
		Description: "First English fortress in India, now houses museum.",
		Distance:    "1.8 km",
		Crowd:       "Low",
	},
}

var suggestedRoutes = []SuggestedRoute{
	{Name: "Heritage Walk", Type: "Walking", Distance: "3.5 km", Duration: "45 min", Cost: "Free", Stops: 5, Icon: "fa-walking"},
	{Name: "Beach Circuit", Type: "Cycling", Distance: "8.2 km", Duration: "35 min", Cost: "Free", Stops: 3, Icon: "fa-bicycle"},
	{Name: "Temple Tour", Type: "Metro + Walk", Distance: "12 km", Duration: "1h 20min", Cost: "₹40", Stops: 4, Icon: "fa-subway"},
}

var events = []Event{
	{Day: 15, Month: "Feb", Title: "Chennai Music Festival", Location: "Music Academy", Description: "Classical Carnatic music performances", Time: "6:00 PM"},
	{Day: 18, Month: "Feb", Title: "Food Festival", Location: "Marina Beach", Description: "Street food from across Tamil Nadu", Time: "5:00 PM"},
	{Day: 22, Month: "Feb", Title: "Art Exhibition", Location: "Lalit Kala Akademi", Description: "Contemporary Indian art showcase", Time: "10:00 AM"},
}

var transport = []Transport{
	{Type: "Bus", Service: "21C", Destination: "Central Station", ETA: "5 min", Icon: "fa-bus"},
	{Type: "Metro", Service: "Blue Line", Destination: "Airport", ETA: "8 min", Icon: "fa-subway"},
	{Type: "Bus", Service: "45A", Destination: "Beach", ETA: "12 min", Icon: "fa-bus"},
	{Type: "Train", Service: "EMU", Destination: "Beach", ETA: "15 min", Icon: "fa-train"},
}

var reviews = []Review{
	{User: "Sarah M.", Rating: 5, Comment: "Amazing place! Must visit.", Time: "2 days ago"},
	{User: "John D.", Rating: 4, Comment: "Great experience, bit crowded.", Time: "1 week ago"},
	{User: "Priya K.", Rating: 5, Comment: "Beautiful architecture!", Time: "2 weeks ago"},
}

var peakHours = []PeakSlot{
	{Hour: "9AM", Crowd: 30},
	{Hour: "11AM", Crowd: 60},
	{Hour: "1PM", Crowd: 85},
	{Hour: "3PM", Crowd: 70},
	{Hour: "5PM", Crowd: 40},
}

// routeOptions is the canned answer of the route planner.
var routeOptions = []RouteOption{
	{
		Mode: "Metro + Walk", Duration: "35 min", Cost: "₹40", Distance: "8.5 km", CO2: "0.2 kg",
		Steps: []RouteStep{
			{Type: "walk", Duration: "5 min", Desc: "Walk to Metro Station"},
			{Type: "metro", Duration: "25 min", Desc: "Blue Line to Central"},
			{Type: "walk", Duration: "5 min", Desc: "Walk to destination"},
		},
	},
	{
		Mode: "Bus", Duration: "50 min", Cost: "₹20", Distance: "9.2 km", CO2: "0.5 kg",
		Steps: []RouteStep{
			{Type: "walk", Duration: "3 min", Desc: "Walk to bus stop"},
			{Type: "bus", Duration: "45 min", Desc: "Bus 21C direct"},
			{Type: "walk", Duration: "2 min", Desc: "Walk to destination"},
		},
	},
	{
		Mode: "Taxi", Duration: "28 min", Cost: "₹180", Distance: "8.5 km", CO2: "2.1 kg",
		Steps: []RouteStep{
			{Type: "taxi", Duration: "28 min", Desc: "Direct ride"},
		},
	},
}

var itineraries = []state.Itinerary{
	{ID: 1, Title: "Chennai Heritage Trail", Days: 1, Places: 5, Created: "AI Generated", Image: "https://images.unsplash.com/photo-1609952048252-38605246e29a?w=400"},
	{ID: 2, Title: "Beach Hopping", Days: 1, Places: 3, Created: "My Itinerary", Image: "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400"},
	{ID: 3, Title: "Foodie's Paradise", Days: 2, Places: 8, Created: "Community", Image: "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400"},
}

var badges = []Badge{
	{ID: "explorer", Name: "Explorer", Icon: "🗺️", Unlocked: true, Desc: "Visit 5 places"},
	{ID: "traveler", Name: "Traveler", Icon: "✈️", Unlocked: true, Desc: "Travel 50km"},
	{ID: "eco-warrior", Name: "Eco Warrior", Icon: "🌱", Unlocked: true, Desc: "Save 20kg CO₂"},
	{ID: "social-star", Name: "Social Star", Icon: "⭐", Unlocked: true, Desc: "Share 10 posts"},
	{ID: "early-bird", Name: "Early Bird", Icon: "🌅", Unlocked: false, Desc: "Visit at 6 AM"},
	{ID: "foodie", Name: "Foodie", Icon: "🍜", Unlocked: false, Desc: "Try 15 restaurants"},
	{ID: "culture-buff", Name: "Culture Buff", Icon: "🎭", Unlocked: false, Desc: "Visit 10 museums"},
	{ID: "marathon", Name: "Marathon", Icon: "🏃", Unlocked: false, Desc: "Walk 100km"},
}

var leaders = []Leader{
	{Rank: 1, Name: "Alex Chen", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=alex", Points: 3420},
	{Rank: 2, Name: "Maria Garcia", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=maria", Points: 2890},
	{Rank: 3, Name: "John Smith", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=john", Points: 2650},
	{Rank: 4, Name: "Priya Patel", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=priya", Points: 2340},
	{Rank: 5, Name: "David Lee", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=david", Points: 2100},
}

var posts = []Post{
	{
		Author:   "Sarah Williams",
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=sarah",
		Time:     "2 hours ago",
		Content:  "Just visited the amazing Kapaleeshwarar Temple! The architecture is breathtaking 🏛️",
		Images:   []string{"https://images.unsplash.com/photo-1609952048252-38605246e29a?w=400"},
		Likes:    45,
		Comments: 12,
	},
	{
		Author:   "Mike Johnson",
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=mike",
		Time:     "5 hours ago",
		Content:  "Best sunrise at Marina Beach! Started my day perfectly 🌅",
		Images:   []string{"https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=400"},
		Likes:    78,
		Comments: 23,
	},
	{
		Author:   "Ananya Kumar",
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=ananya",
		Time:     "1 day ago",
		Content:  "Tried authentic Chettinad cuisine today. Highly recommend! 🍛",
		Images:   []string{"https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400"},
		Likes:    92,
		Comments: 34,
	},
}

var hospitals = []Contact{
	{Name: "Apollo Hospital", Distance: "2.1 km", Phone: "044-28296000"},
	{Name: "Fortis Malar", Distance: "3.4 km", Phone: "044-42892222"},
	{Name: "MIOT Hospital", Distance: "4.7 km", Phone: "044-42002000"},
}

var policeStations = []Contact{
	{Name: "Anna Nagar Police", Distance: "1.8 km", Phone: "044-26162525"},
	{Name: "T Nagar Police", Distance: "2.9 km", Phone: "044-28342020"},
}

var journalEntries = []JournalEntry{
	{ID: 1, Title: "Amazing Day at Marina Beach", Date: "2026-02-10", Image: "https://images.unsplash.com/photo-1582510003544-4d00b7f74220?w=400", Content: "Watched the most beautiful sunset today..."},
	{ID: 2, Title: "Temple Architecture Wonder", Date: "2026-02-08", Image: "https://images.unsplash.com/photo-1609952048252-38605246e29a?w=400", Content: "The intricate carvings were mesmerizing..."},
}

// Catalog exposes the sample attractions, for search before any page has
// loaded them.
func Catalog() []state.Attraction {
	return append([]state.Attraction(nil), attractions...)
}

// RouteOptions returns the canned route planner answer.
func RouteOptions() []RouteOption {
	return append([]RouteOption(nil), routeOptions...)
}
