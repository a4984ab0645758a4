package catalog

// Default returns the built-in PMP training catalog.
func Default() *Catalog {
	return &Catalog{
		Name: "PMP Training",
		Modules: []Module{
			{ID: 0, Title: "Module 0: Introduction", Description: "Introduction to PMP Training", Path: "/materials/Module 0 Notes.pdf"},
			{ID: 1, Title: "Module 1: Project Management Fundamentals", Description: "Core concepts and principles of project management", Path: "/materials/Module 1 Notes.pdf"},
			{ID: 2, Title: "Module 2: Project Life Cycle and Processes", Description: "Understanding project life cycles and process groups", Path: "/materials/Module 2 Notes.pdf"},
			{ID: 3, Title: "Module 3: Project Integration Management", Description: "Integration management processes and techniques", Path: "/materials/Module 3 Notes.pdf"},
			{ID: 4, Title: "Module 4: Project Scope and Schedule Management", Description: "Scope and schedule management best practices", Path: "/materials/Module 4 Notes.pdf"},
			{ID: 5, Title: "Module 5: Project Cost and Quality Management", Description: "Cost estimation and quality assurance", Path: "/materials/Module 5 Notes.pdf"},
			{ID: 6, Title: "Module 6: Project Risk and Communication Management", Description: "Risk management and stakeholder communication", Path: "/materials/Module 6 Notes.pdf"},
		},
		Resources: []Record{
			{ID: "pmbok", Title: "PMBOK 7th Edition", Path: "/materials/PMBOK 7th edition.pdf", Category: CategoryReference},
			{ID: "agile", Title: "Agile Practice Guide", Path: "/materials/Agile Practice Guide(1).pdf", Category: CategoryReference},
			{ID: "case-study", Title: "Shawpe Lifestyle Centre Project Case Study", Path: "/materials/Shawpe Lifestyle Centre Project Case Study_PMP Version 3-1.pdf", Category: CategoryCaseStudy},
			{ID: "glossary", Title: "PMP Glossary", Path: "/materials/Glossary - PMP .pdf", Category: CategoryReference},
			{ID: "questions", Title: "Mastery Builder Questions", Path: "/materials/Mastery Builder Questions_v3_Jan 2023.pdf", Category: CategoryPractice},
		},
		Practice: Record{ID: "questions", Title: "PMP Practice Questions", Path: "/materials/Mastery Builder Questions_v3_Jan 2023.pdf", Category: CategoryPractice},
		Glossary: Record{ID: "glossary", Title: "PMP Glossary", Path: "/materials/Glossary - PMP .pdf", Category: CategoryReference},
		Terms: []Term{
			{Term: "Baseline", Definition: "The approved version of a work product that can be changed only through **formal change control** procedures."},
			{Term: "Critical Path", Definition: "The sequence of activities that represents the longest path through a project, which determines the shortest possible duration."},
			{Term: "Earned Value (EV)", Definition: "The measure of work performed expressed in terms of the budget authorized for that work."},
			{Term: "Scope Creep", Definition: "The uncontrolled expansion to product or project scope without adjustments to time, cost, and resources."},
			{Term: "Stakeholder", Definition: "An individual, group, or organization that may affect, be affected by, or perceive itself to be affected by a decision, activity, or outcome of a project."},
			{Term: "Work Breakdown Structure (WBS)", Definition: "A hierarchical decomposition of the total scope of work to be carried out by the project team to accomplish the project objectives."},
		},
	}
}
