package domain

// DefaultSeed returns the content written to an empty store on first start.
// A fresh copy is built on every call so callers may mutate it.
func DefaultSeed() SeedBatch {
	return SeedBatch{
		Sections: []Section{
			{
				SectionType: SectionHero,
				IsActive:    true,
				Content: map[string]interface{}{
					"name":    "Software Developer",
					"title":   "Full Stack Developer & Problem Solver",
					"tagline": "Building innovative solutions with code",
					"terminal_intro": []interface{}{
						"$ whoami",
						"Software Developer & Problem Solver",
						"$ echo 'Welcome to my terminal portfolio'",
						"Welcome to my terminal portfolio",
					},
				},
			},
			{
				SectionType: SectionAbout,
				IsActive:    true,
				Content: map[string]interface{}{
					"name": "Your Name",
					"bio":  "Passionate software developer with expertise in full-stack development. I enjoy creating elegant solutions to complex problems.",
					"education": map[string]interface{}{
						"institution": "Conestoga College",
						"degree":      "Software Engineering",
						"year":        "2023",
					},
					"location": "Canada",
					"email":    "your.email@example.com",
				},
			},
			{
				SectionType: SectionContact,
				IsActive:    true,
				Content: map[string]interface{}{
					"email":    "your.email@example.com",
					"linkedin": "https://linkedin.com/in/yourprofile",
					"github":   "https://github.com/yourusername",
					"twitter":  "@yourusername",
					"phone":    "+1 (555) 123-4567",
				},
			},
		},
		Skills: []Skill{
			{Name: "JavaScript", Category: CategoryLanguages, Proficiency: 4},
			{Name: "Python", Category: CategoryLanguages, Proficiency: 4},
			{Name: "React", Category: CategoryFrameworks, Proficiency: 4},
			{Name: "Node.js", Category: CategoryFrameworks, Proficiency: 3},
			{Name: "FastAPI", Category: CategoryFrameworks, Proficiency: 3},
			{Name: "MongoDB", Category: CategoryDatabases, Proficiency: 3},
			{Name: "PostgreSQL", Category: CategoryDatabases, Proficiency: 3},
			{Name: "AWS", Category: CategoryCloud, Proficiency: 2},
			{Name: "Docker", Category: CategoryTools, Proficiency: 3},
			{Name: "Git", Category: CategoryTools, Proficiency: 4},
		},
		Projects: []Project{
			{
				Title:       "Terminal Portfolio Website",
				Description: "A modern terminal-style portfolio with 3D animations and glass morphism design",
				TechStack:   []string{"React", "Three.js", "Go", "PostgreSQL"},
				Featured:    true,
			},
			{
				Title:       "Task Management System",
				Description: "Full-stack application for project and task management",
				TechStack:   []string{"React", "Node.js", "PostgreSQL"},
				Featured:    true,
			},
		},
	}
}

// TerminalCommands is the static command list served to the terminal UI.
func TerminalCommands() []TerminalCommand {
	return []TerminalCommand{
		{Command: "help", Description: "Show available commands", Section: "system"},
		{Command: "about", Description: "Display about section", Section: "about"},
		{Command: "whoami", Description: "Display developer info", Section: "hero"},
		{Command: "skills", Description: "List technical skills", Section: "skills"},
		{Command: "projects", Description: "Show projects grid", Section: "projects"},
		{Command: "experience", Description: "Display work history", Section: "experience"},
		{Command: "contact", Description: "Open contact form", Section: "contact"},
		{Command: "clear", Description: "Clear terminal screen", Section: "system"},
		{Command: "edit", Description: "Enter edit mode (Admin)", Section: "admin", IsAdmin: true},
		{Command: "theme", Description: "Toggle theme", Section: "system"},
	}
}
