package weather

// Activity is a suggested eco-friendly activity for the current weather.
type Activity struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

var recommendations = map[string][]Activity{
	"Cerah": {
		{Title: "Cycling around the city or park", Image: "/images/active/cycling.jpg"},
		{Title: "Planting plants or gardening in the yard", Image: "/images/active/gardening.jpg"},
		{Title: "Climbing hills or walking in the open air", Image: "/images/active/hiking.jpg"},
		{Title: "Visiting traditional markets with your own shopping bags", Image: "/images/active/bags.jpg"},
		{Title: "Drying clothes without a dryer", Image: "/images/active/drying.jpg"},
	},
	"Cerah Berawan": {
		{Title: "Reading environmental-themed books in the open air", Image: "/images/active/reading.jpg"},
		{Title: "Filling out quizzes or challenges about eco-lifestyle", Image: "/images/active/strategy.jpg"},
		{Title: "Using time to educate children about recycling", Image: "/images/active/teaching.jpg"},
		{Title: "Visiting a library or green community space", Image: "/images/active/library.jpg"},
		{Title: "Making educational vlogs about the weather & the surrounding nature", Image: "/images/active/vlogging.jpg"},
	},
	"Berawan": {
		{Title: "Join a local eco-community discussion outdoors", Image: "/images/active/community.jpg"},
		{Title: "Reading environmental-themed books in the open air", Image: "/images/active/reading.jpg"},
		{Title: "Sketching nature scenery using eco-friendly materials", Image: "/images/active/sketch.jpg"},
		{Title: "Visiting a library or green community space", Image: "/images/active/library.jpg"},
		{Title: "Writing an eco-journal while enjoying the breeze", Image: "/images/active/journal.jpg"},
	},
	"Berawan Tebal": {
		{Title: "Documenting cloud patterns for climate awareness post", Image: "/images/active/skywatch.jpg"},
		{Title: "Filling out quizzes or challenges about eco-lifestyle", Image: "/images/active/hiking.jpg"},
		{Title: "Using time to educate children about recycling", Image: "/images/active/teaching.jpg"},
		{Title: "Practicing mindful walking while picking up trash", Image: "/images/active/trash.jpg"},
		{Title: "Making educational vlogs about the weather & nature", Image: "/images/active/vlogging.jpg"},
	},
	"Hujan Ringan": {
		{Title: "Creating DIY pots from used materials indoors", Image: "/images/active/diy-pots.jpg"},
		{Title: "Cleaning and sorting used goods at home", Image: "/images/active/cleaning.jpg"},
		{Title: "Watching environmental documentaries", Image: "/images/active/documentary.jpg"},
		{Title: "Writing blogs or short stories about climate change", Image: "/images/active/writing.jpg"},
		{Title: "Organizing your digital files to reduce e-waste", Image: "/images/active/digital-cleanup.jpg"},
	},
	"Hujan Sedang": {
		{Title: "Starting a seed planting project indoors", Image: "/images/active/planting.jpg"},
		{Title: "Making compost from kitchen scraps at home", Image: "/images/active/compost.jpg"},
		{Title: "Writing letters to local officials about sustainability", Image: "/images/active/letter.jpg"},
		{Title: "Designing eco-awareness posters or infographics", Image: "/images/active/design.jpg"},
		{Title: "Learning how to repair clothes instead of throwing them away", Image: "/images/active/repair.jpg"},
	},
	"Hujan Lebat": {
		{Title: "Attend a webinar or online training about sustainability", Image: "/images/active/webinar.jpg"},
		{Title: "Turn off unused electronic devices to save energy", Image: "/images/active/energy.jpg"},
		{Title: "Make DIY eco-crafts from recycled materials", Image: "/images/active/recycling.jpg"},
		{Title: "Create an upcycled home decoration", Image: "/images/active/upcycle.jpg"},
		{Title: "Meditate and reflect on personal eco-goals", Image: "/images/active/meditate.jpg"},
	},
	"Hujan Lokal": {
		{Title: "Attend a virtual eco-cooking class", Image: "/images/active/cooking.jpg"},
		{Title: "Turn off unused electronic devices to save energy", Image: "/images/active/energy.jpg"},
		{Title: "Make DIY eco-crafts from recycled materials", Image: "/images/active/recycling.jpg"},
		{Title: "Take part in a 24-hour energy saving challenge", Image: "/images/active/challenge.jpg"},
		{Title: "Organize a digital eco-awareness campaign", Image: "/images/active/awareness.jpg"},
	},
	"Hujan Petir": {
		{Title: "Attend a webinar or online training about sustainability", Image: "/images/active/webinar.jpg"},
		{Title: "Create an indoor garden plan using reused containers", Image: "/images/active/plan-garden.jpg"},
		{Title: "Make DIY eco-crafts from recycled materials", Image: "/images/active/recycling.jpg"},
		{Title: "Design a green lifestyle schedule for the next week", Image: "/images/active/planning.jpg"},
		{Title: "Learn about eco-anxiety and how to manage it", Image: "/images/active/eco-anxiety.jpg"},
	},
}

var defaultActivities = []Activity{
	{Title: "Take a moment to appreciate nature around you", Image: "/images/active/nature.jpg"},
	{Title: "Plan your next eco-friendly activity", Image: "/images/active/planning.jpg"},
	{Title: "Learn something new about sustainability", Image: "/images/active/learning.jpg"},
}

// Recommend returns the activity list for a weather condition, falling
// back to a generic list for unknown conditions.
func Recommend(condition string) []Activity {
	if acts, ok := recommendations[condition]; ok {
		return acts
	}
	return defaultActivities
}
