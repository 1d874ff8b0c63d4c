package therapists

// Therapist is one listed professional. Prices are per session in rupees.
type Therapist struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Languages      []string `json:"lang"`
	Price          int      `json:"price"`
	Rating         float64  `json:"rating"`
	Experience     string   `json:"experience"`
	Modes          []string `json:"modes"`
	Avatar         string   `json:"avatar"`
	Description    string   `json:"description"`
}

var therapists = []Therapist{
	{
		ID: 1, Name: "Dr. Arnav Singh", Specialization: "Clinical Psychology",
		Languages: []string{"hi", "en"}, Price: 799, Rating: 4.7, Experience: "8 years",
		Modes: []string{"chat", "call", "video"}, Avatar: "👨‍⚕️",
		Description: "Specialized in anxiety and depression",
	},
	{
		ID: 2, Name: "Aaryan Kumar", Specialization: "Counseling Psychology",
		Languages: []string{"hi", "en"}, Price: 599, Rating: 4.5, Experience: "5 years",
		Modes: []string{"chat", "call"}, Avatar: "👨‍💼",
		Description: "Focus on youth mental health",
	},
	{
		ID: 3, Name: "Ankur Verma", Specialization: "Psychiatry",
		Languages: []string{"en"}, Price: 999, Rating: 4.8, Experience: "12 years",
		Modes: []string{"video"}, Avatar: "👨‍⚕️",
		Description: "MD in Psychiatry with medication management",
	},
	{
		ID: 4, Name: "Aanchal", Specialization: "Art Therapy",
		Languages: []string{"hi"}, Price: 499, Rating: 4.6, Experience: "4 years",
		Modes: []string{"chat", "video"}, Avatar: "👩‍🎨",
		Description: "Creative approaches to healing",
	},
	{
		ID: 5, Name: "Aakash Patel", Specialization: "Cognitive Behavioral Therapy",
		Languages: []string{"hi", "en", "gu"}, Price: 9, Rating: 4.9, Experience: "10 years",
		Modes: []string{"chat", "video"}, Avatar: "👨‍🏫",
		Description: "CBT expert with focus on thought patterns",
	},
	{
		ID: 6, Name: "Nitin", Specialization: "Mindfulness & Meditation",
		Languages: []string{"en", "te", "hi"}, Price: 649, Rating: 4.7, Experience: "6 years",
		Modes: []string{"video", "call"}, Avatar: "🧘‍♂️",
		Description: "Guided meditation and mindfulness practices",
	},
}

// List returns the directory.
func List() []Therapist {
	out := make([]Therapist, len(therapists))
	copy(out, therapists)
	return out
}
