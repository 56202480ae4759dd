package seed

import (
	"fmt"
	"time"

	"portfolio/internal/database"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
	"portfolio/internal/validation"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminEmail and AdminPassword are the credentials of the demo account.
const (
	AdminEmail    = "admin@portfolio.com"
	AdminPassword = "admin123456"
)

const deviconBase = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

// Result reports what a seeding run did.
type Result struct {
	Skipped     bool
	Skills      int
	Projects    int
	Experiences int
	Pages       int
}

// Seeder fills an empty database with demo portfolio content.
type Seeder struct {
	db *gorm.DB
}

// New creates a Seeder over db.
func New(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run seeds the database. Without force it does nothing when users, skills or
// projects already exist. With force every table is cleaned first.
func (s *Seeder) Run(force bool) (*Result, error) {
	if force {
		logger.Warn("force seeding: cleaning database")
		if err := database.Clean(s.db); err != nil {
			return nil, err
		}
	} else {
		populated, err := s.populated()
		if err != nil {
			return nil, err
		}
		if populated {
			logger.Info("database already has content, skipping seed")
			return &Result{Skipped: true}, nil
		}
	}

	res := &Result{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return seedAll(tx, res)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info("database seeded",
		"skills", res.Skills,
		"projects", res.Projects,
		"experiences", res.Experiences,
		"pages", res.Pages,
		"admin", AdminEmail,
	)
	return res, nil
}

func (s *Seeder) populated() (bool, error) {
	counters := []interface{ Count() (int64, error) }{
		repositories.NewGORMUserRepository(s.db),
		repositories.NewGORMSkillRepository(s.db),
		repositories.NewGORMProjectRepository(s.db),
	}
	for _, r := range counters {
		n, err := r.Count()
		if err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

func seedAll(tx *gorm.DB, res *Result) error {
	skillRepo := repositories.NewGORMSkillRepository(tx)
	userRepo := repositories.NewGORMUserRepository(tx)
	projectRepo := repositories.NewGORMProjectRepository(tx)
	experienceRepo := repositories.NewGORMExperienceRepository(tx)
	pageRepo := repositories.NewGORMPageContentRepository(tx)
	homepageRepo := repositories.NewGORMHomepageRepository(tx)

	skills := demoSkills()
	for i := range skills {
		if err := create(&skills[i], skillRepo.Create); err != nil {
			return err
		}
	}
	res.Skills = len(skills)
	top := skills[:6]

	hash, err := services.HashPassword(AdminPassword)
	if err != nil {
		return err
	}
	admin := demoAdmin(hash, top)
	if err := create(admin, userRepo.Create); err != nil {
		return err
	}

	projects := demoProjects(top)
	var featured []models.Project
	for i := range projects {
		if err := create(&projects[i], projectRepo.Create); err != nil {
			return err
		}
		if projects[i].IsFeatured {
			featured = append(featured, projects[i])
		}
	}
	res.Projects = len(projects)

	if err := homepageRepo.Save(&models.Homepage{
		UserID:           admin.ID,
		Skills:           top,
		FeaturedProjects: featured,
	}); err != nil {
		return err
	}

	for _, page := range demoPages() {
		if err := create(&page, pageRepo.Save); err != nil {
			return err
		}
		res.Pages++
	}

	for _, exp := range demoExperiences() {
		if err := create(&exp, experienceRepo.Create); err != nil {
			return err
		}
		res.Experiences++
	}
	return nil
}

// create validates v like the API would before handing it to the repository.
func create[T any](v *T, save func(*T) error) error {
	if err := validation.Validate(v); err != nil {
		return fmt.Errorf("invalid seed %T: %w", v, err)
	}
	return save(v)
}

func devicon(name, variant string) string {
	return deviconBase + name + "/" + name + "-" + variant + ".svg"
}

// demoSkills are ordered by display order so the first six are the featured ones.
func demoSkills() []models.Skill {
	return []models.Skill{
		{Name: "JavaScript", Category: "Frontend", Level: models.LevelExpert, Order: 1, IconURL: devicon("javascript", "original")},
		{Name: "React", Category: "Frontend", Level: models.LevelAdvanced, Order: 2, IconURL: devicon("react", "original")},
		{Name: "Node.js", Category: "Backend", Level: models.LevelAdvanced, Order: 3, IconURL: devicon("nodejs", "original")},
		{Name: "Express.js", Category: "Backend", Level: models.LevelAdvanced, Order: 4, IconURL: devicon("express", "original")},
		{Name: "MongoDB", Category: "Databases", Level: models.LevelIntermediate, Order: 5, IconURL: devicon("mongodb", "original")},
		{Name: "MySQL", Category: "Databases", Level: models.LevelIntermediate, Order: 6, IconURL: devicon("mysql", "original")},
		{Name: "PostgreSQL", Category: "Databases", Level: models.LevelIntermediate, Order: 7, IconURL: devicon("postgresql", "original")},
		{Name: "Git", Category: "Tools", Level: models.LevelExpert, Order: 8, IconURL: devicon("git", "original")},
		{Name: "Tailwind CSS", Category: "Frontend", Level: models.LevelAdvanced, Order: 9, IconURL: devicon("tailwindcss", "original")},
		{Name: "Docker", Category: "Tools", Level: models.LevelIntermediate, Order: 10, IconURL: devicon("docker", "original")},
		{Name: "CI/CD", Category: "Tools", Level: models.LevelIntermediate, Order: 11, IconURL: devicon("circleci", "plain")},
		{Name: "Postman", Category: "Tools", Level: models.LevelIntermediate, Order: 12, IconURL: devicon("postman", "original")},
		{Name: "Visual Studio Code", Category: "Tools", Level: models.LevelIntermediate, Order: 13, IconURL: devicon("vscode", "original")},
		{Name: "Eslint", Category: "Tools", Level: models.LevelExpert, Order: 14, IconURL: devicon("eslint", "original")},
		{Name: "Prettier", Category: "Tools", Level: models.LevelExpert, Order: 15, IconURL: "https://unpkg.com/prettier-logo@1.0.3/images/prettier-icon-light.svg"},
		{Name: "Communication", Category: "Soft Skills", Level: models.LevelAdvanced, Order: 16},
		{Name: "Problem Solving", Category: "Soft Skills", Level: models.LevelExpert, Order: 17},
	}
}

func demoAdmin(passwordHash string, featured []models.Skill) *models.User {
	return &models.User{
		Name:     "Deiby Arango",
		Email:    AdminEmail,
		Password: passwordHash,
		Role:     models.RoleAdmin,
		Title:    "Full-stack Developer",
		Bio: "Passionate about building robust and scalable web solutions, with experience in " +
			"modern technologies and a focus on performance and user experience.",
		SocialLinks: datatypes.JSONSlice[models.SocialLink]{
			{Platform: "LinkedIn", URL: "https://www.linkedin.com/in/deibyarango/"},
			{Platform: "GitHub", URL: "https://github.com/Defer1189"},
		},
		FeaturedSkills: featured,
	}
}

func demoProjects(skills []models.Skill) []models.Project {
	return []models.Project{
		{
			Title:            "E-commerce Platform",
			ShortDescription: "E-commerce platform with a shopping cart and payment gateway.",
			LongDescription: "A complete online store where customers browse a product catalogue, manage a " +
				"shopping cart and pay through an integrated payment gateway. Includes an admin area " +
				"for inventory and order management.",
			Technologies: []models.Skill{skills[0], skills[1], skills[2], skills[3], skills[4]},
			ImageURL:     "https://placehold.co/600x400/FF0000/FFFFFF?text=E-commerce",
			LiveDemoURL:  "https://demo.ecommerce.com",
			GithubURL:    "https://github.com/yourusername/ecommerce-platform",
			Order:        1,
			IsFeatured:   true,
		},
		{
			Title:            "Task Management System",
			ShortDescription: "Web application to organise and manage daily tasks.",
			LongDescription: "A task manager with projects, due dates and priorities. Users can create, " +
				"assign and track tasks on a kanban style board and get reminders for upcoming deadlines.",
			Technologies: []models.Skill{skills[1], skills[2], skills[5]},
			ImageURL:     "https://placehold.co/600x400/00FF00/000000?text=Task+Manager",
			LiveDemoURL:  "https://demo.taskmanager.com",
			GithubURL:    "https://github.com/yourusername/task-manager",
			Order:        2,
			IsFeatured:   true,
		},
		{
			Title:            "Personal Blog",
			ShortDescription: "Personal blog to share articles about web development.",
			LongDescription: "A lightweight blog engine with markdown articles, tags and a comment " +
				"section, built to share notes and tutorials about web development.",
			Technologies: []models.Skill{skills[1]},
			ImageURL:     "https://placehold.co/600x400/0000FF/FFFFFF?text=Blog",
			LiveDemoURL:  "https://blog.yourusername.com",
			GithubURL:    "https://github.com/yourusername/personal-blog",
			Order:        3,
		},
	}
}

func demoPages() []models.PageContent {
	return []models.PageContent{
		{
			PageName: "contact",
			Title:    "Contact Me",
			Introduction: "Have a project in mind or just want to say hello? Fill in the form and " +
				"I will get back to you as soon as possible.",
			Sections: datatypes.JSONSlice[models.Section]{},
		},
		{
			PageName: "about",
			Title:    "About Me",
			Introduction: "I am a full-stack developer who enjoys turning ideas into fast, " +
				"accessible and maintainable web applications.",
			Sections: datatypes.JSONSlice[models.Section]{
				{
					SectionTitle: "My Story",
					Text: "I started programming out of curiosity and soon turned it into a career, " +
						"moving from small freelance sites to production systems used every day.",
				},
				{
					SectionTitle: "Work Philosophy",
					Text: "I value clean code, honest communication and shipping small increments " +
						"that deliver real value to the people who use them.",
				},
			},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func demoExperiences() []models.Experience {
	return []models.Experience{
		{
			Type:        models.ExperienceJob,
			Title:       "Senior Full Stack Developer",
			Company:     "Tech Solutions Inc.",
			Location:    "Bogotá, Colombia",
			StartDate:   date(2022, time.January, 1),
			Description: "Leading the development of scalable web applications and mentoring junior developers.",
			Order:       1,
		},
		{
			Type:        models.ExperienceJob,
			Title:       "Junior Web Developer",
			Company:     "Startup Innovate",
			Location:    "Medellín, Colombia",
			StartDate:   date(2020, time.March, 1),
			EndDate:     datePtr(2021, time.December, 31),
			Description: "Built responsive user interfaces and REST APIs for early stage products.",
			Order:       2,
		},
		{
			Type:        models.ExperienceEducation,
			Title:       "Systems Engineering",
			Institution: "Universidad Nacional de Colombia",
			Location:    "Bogotá, Colombia",
			StartDate:   date(2016, time.August, 1),
			EndDate:     datePtr(2021, time.December, 31),
			Order:       3,
		},
		{
			Type:        models.ExperienceCertification,
			Title:       "Certified MERN Stack Developer",
			Institution: "Udemy",
			StartDate:   date(2022, time.June, 1),
			Order:       4,
		},
	}
}
