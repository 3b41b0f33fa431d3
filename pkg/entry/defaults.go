package entry

// Defaults is the sample journal written on first run.
func Defaults() []Entry {
	return []Entry{
		{
			ID:          "1",
			ImgURL:      "https://images.pexels.com/photos/1571939/pexels-photo-1571939.jpeg",
			Rating:      4.8,
			Categories:  []string{"Morning", "Running", "Outdoors"},
			Date:        "05/08/2025",
			Description: "First 10k along the river before work. Legs were heavy for the first two kilometres and then everything loosened up.",
		},
		{
			ID:          "2",
			ImgURL:      "https://images.pexels.com/photos/1907227/pexels-photo-1907227.jpeg",
			Rating:      3.5,
			Categories:  []string{"Cooking", "Experiment"},
			Date:        "12/08/2025",
			Description: "Tried a sourdough loaf with rye. The crumb was too dense. Next time feed the starter the night before.",
		},
		{
			ID:          "3",
			ImgURL:      "https://images.pexels.com/photos/1287145/pexels-photo-1287145.jpeg",
			Rating:      4.5,
			Categories:  []string{"Hiking", "Outdoors", "Friends"},
			Date:        "20/08/2025",
			Description: "Ridge walk with the climbing group. Clear skies all the way to the summit and a long lunch at the hut.",
		},
		{
			ID:          "4",
			ImgURL:      "https://images.pexels.com/photos/256541/pexels-photo-256541.jpeg",
			Rating:      4.2,
			Categories:  []string{"Reading", "Quiet"},
			Date:        "28/08/2025",
			Description: "Finished the novel I started in June. Slow middle but the last hundred pages were worth it.",
		},
		{
			ID:          "5",
			ImgURL:      "https://images.pexels.com/photos/1309766/pexels-photo-1309766.jpeg",
			Rating:      5.0,
			Categories:  []string{"Music", "Friends", "Evening"},
			Date:        "03/09/2025",
			Description: "Open air concert in the park. Perfect weather and the encore went on for twenty minutes.",
		},
		{
			ID:          "6",
			ImgURL:      "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg",
			Rating:      3.8,
			Categories:  []string{"Work", "Milestone"},
			Date:        "10/09/2025",
			Description: "Shipped the migration we have been planning since spring. Two rollbacks but it is done.",
		},
		{
			ID:          "7",
			ImgURL:      "https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg",
			Rating:      4.6,
			Categories:  []string{"Family", "Outdoors"},
			Date:        "20/09/2025",
			Description: "Took the dog to the lake. She swam until she could barely stand and slept the whole drive home.",
		},
		{
			ID:          "8",
			ImgURL:      "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
			Rating:      4.5,
			Categories:  []string{"Cooking", "Celebration"},
			Date:        "29/02/2024",
			Description: "Leap day dinner. Cooked the whole menu from the old family notebook.",
		},
	}
}
