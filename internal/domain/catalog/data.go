package catalog

// Tech Fiesta 2025 reference data. IDs are stable across the frontend and the
// persisted registration snapshots; never reuse a removed ID.

var events = []Event{
	{
		ID:          1,
		Title:       "Reverse Code",
		Type:        EventTypeTech,
		Description: "Write code in reverse order! If the problem is to print 'hello world', you must code it backwards. A unique challenge that tests your programming logic and creativity.",
		Tags:        []string{"Programming", "Logic", "Creative Coding"},
		Price:       99,
		CITPrice:    59,
	},
	{
		ID:          2,
		Title:       "Escape Room",
		Type:        EventTypeTech,
		Description: "Solve interconnected problems to progress through levels. Retrieve passwords using hints and answer security questions based on clues. A digital escape room experience!",
		Tags:        []string{"Problem Solving", "Security", "Puzzles"},
		Price:       99,
		CITPrice:    59,
		MaxTeamSize: 2,
	},
	{
		ID:          3,
		Title:       "Prompt Engineering",
		Type:        EventTypeTech,
		Description: "Complete tasks using AI tools within time limits. Create responsive web pages, generate images, write compelling stories - all through effective prompt engineering.",
		Tags:        []string{"AI", "Prompt Engineering", "Creative AI"},
		Price:       99,
		CITPrice:    59,
	},
	{
		ID:          4,
		Title:       "Project Presentation",
		Type:        EventTypeTech,
		Description: "Develop feasible solutions to given problems. Present innovative and practical approaches that effectively address requirements and demonstrate technical excellence.",
		Tags:        []string{"Presentation", "Innovation", "Problem Solving"},
		Price:       99,
		CITPrice:    59,
		MaxTeamSize: 2,
	},
	{
		ID:          5,
		Title:       "Tech Trivia",
		Type:        EventTypeTech,
		Description: "A competitive online tech quiz designed to challenge participants on core concepts in Computer Science and emerging technologies through a variety of question types, under time pressure.",
		Tags:        []string{"CTF", "Cryptography", "Web Security", "Competition"},
		Price:       99,
		CITPrice:    59,
		MaxTeamSize: 2,
	},
	{
		ID:          6,
		Title:       "UI/UX",
		Type:        EventTypeTech,
		Description: "An exciting online design challenge where speed, logic, and accuracy collide! Whether you're a creative mind or a tech enthusiast, this event is your chance to shine among peers.",
		Tags:        []string{"UI/UX", "Design", "Creativity", "Competition"},
		Price:       99,
		CITPrice:    59,
		MaxTeamSize: 2,
	},

	// Non-technical events are paid at the venue, never online.
	{
		ID:          7,
		Title:       "BGMI",
		Type:        EventTypeNonTech,
		Description: "Battle it out in the popular mobile game BGMI! Team up, strategize, and compete for victory in an action-packed gaming tournament.",
		Tags:        []string{"Gaming", "Teamwork", "Strategy", "Competition"},
		Price:       79,
	},
	{
		ID:          8,
		Title:       "ADDZAP",
		Type:        EventTypeNonTech,
		Description: "Unleash your creativity in ADDZAP! Create and present unique advertisements for fun products, showcasing your storytelling and public speaking skills.",
		Tags:        []string{"Storytelling", "Creativity", "Public Speaking"},
		Price:       79,
	},
	{
		ID:          9,
		Title:       "JAM",
		Type:        EventTypeNonTech,
		Description: "Showcase your spontaneity in Just A Minute (JAM)! Speak on a given topic for one minute without hesitation, repetition, or deviation.",
		Tags:        []string{"Public Speaking", "Spontaneity", "Communication", "Fun"},
		Price:       79,
	},
	{
		ID:          11,
		Title:       "Best Photography",
		Type:        EventTypeNonTech,
		Description: "Capture the essence of the event! Submit your best photographs and compete for the title of Best Photographer, judged on creativity and technique.",
		Tags:        []string{"Photography", "Creativity", "Contest", "Art"},
		Price:       79,
	},
}

var workshops = []Workshop{
	{
		ID:          101,
		Title:       "Full-Stack Web Development",
		Category:    "Web",
		Level:       "Beginner",
		Description: "Build and deploy a complete web application in a day. Covers REST APIs, databases and a modern frontend.",
		Tags:        []string{"Web", "APIs", "Databases"},
		Price:       100,
		Seats:       60,
	},
	{
		ID:          102,
		Title:       "Machine Learning Kickstart",
		Category:    "AI/ML",
		Level:       "Beginner",
		Description: "Hands-on introduction to supervised learning: train, evaluate and ship your first model.",
		Tags:        []string{"AI", "Python", "Models"},
		Price:       100,
		Seats:       60,
	},
	{
		ID:          103,
		Title:       "Ethical Hacking Essentials",
		Category:    "Security",
		Level:       "Intermediate",
		Description: "Learn reconnaissance, exploitation and reporting in a guided lab environment.",
		Tags:        []string{"Security", "Pentesting", "Labs"},
		Price:       100,
		Seats:       40,
	},
	{
		ID:          104,
		Title:       "Cloud Native Deployments",
		Category:    "Cloud",
		Level:       "Intermediate",
		Description: "Containerize an application and roll it out with CI/CD onto a managed Kubernetes cluster.",
		Tags:        []string{"Cloud", "Containers", "CI/CD"},
		Price:       100,
		Seats:       40,
	},
}

var passes = []Pass{
	{
		ID:                   201,
		Name:                 "Tech Pass",
		Description:          "All-access to every technical event. Workshops are charged separately.",
		Price:                249,
		CITPrice:             149,
		IncludedTechEvents:   0,
		AllowExtraTechEvents: false, // all access, no per-event charge
		IncludedWorkshops:    0,
		AllowExtraWorkshops:  true,
	},
	{
		ID:                   202,
		Name:                 "Combo Pass",
		Description:          "Two technical events and one workshop included; additional selections charged per item.",
		Price:                299,
		CITPrice:             199,
		IncludedTechEvents:   2,
		AllowExtraTechEvents: true,
		IncludedWorkshops:    1,
		AllowExtraWorkshops:  true,
	},
}
