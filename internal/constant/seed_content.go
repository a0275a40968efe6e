package constant

import "typing-training-be/internal/entity"

// SeedContent is the fixed curated set inserted once when the content
// collection is empty. Repeated seeding is a no-op.
var SeedContent = []entity.Content{
	{
		Title:        "Seneca on the Shortness of Life",
		Section:      "ESSENTIAL FOUNDATIONS",
		Sender:       "Seneca",
		TopicTag:     "Stoicism",
		Difficulty:   "Medium",
		TimeEstimate: "6 min",
		Words:        120,
		Text: "It is not that we have a short time to live, but that we waste a great deal of it. " +
			"Life is long enough, and a sufficiently generous amount has been given to us for the highest achievements " +
			"if it were all well invested.",
		Context: "You feel rushed and scattered. This resets your frame to ownership of time.",
	},
	{
		Title:        "Voss: Tactical Empathy",
		Section:      "THE BOARDROOM",
		Sender:       "Chris Voss",
		TopicTag:     "Negotiation",
		Difficulty:   "Hard",
		TimeEstimate: "8 min",
		Words:        140,
		Text: "Tactical empathy is understanding the feelings and mindset of another in the moment and also hearing " +
			"what is behind those feelings so you increase your influence in all the moments that follow.",
		Context: "You're entering a tough conversation. Prime to listen and label before asserting.",
	},
}
