// Package content holds the static portfolio data shown by the player menu,
// the TV, and the resume document.
package content

// Job is one experience entry.
type Job struct {
	JobTitle string
	Company  string
	Slug     string
	Tenure   string
	Tasks    []string
	Summary  string
}

// Project is one portfolio entry.
type Project struct {
	Title string
	Slug  string
	Tech  string
	URL   string
}

// SkillGroup is a titled list of skills.
type SkillGroup struct {
	Title  string
	Skills []string
}

// Track is one playable song. Audio is loaded from <Slug>.mp3.
type Track struct {
	Slug   string
	Title  string
	Artist string
	Album  string
}

// Channel is one TV channel.
type Channel struct {
	ID      int
	Label   string
	VideoID string
}

// School is the education entry.
type School struct {
	Name  string
	Major string
}

// Document is a titled, sectioned text document.
type Document struct {
	Title    string
	Subtitle string
	Sections []Section
	Footer   string
	URL      string
}

// Section is one headed block of a document.
type Section struct {
	Heading string
	Lines   []string
}

// Experience lists jobs, most recent first.
var Experience = []Job{
	{
		JobTitle: "Lead AI Engineer",
		Company:  "Code and Theory",
		Slug:     "codeandtheory",
		Tenure:   "02/2025 - Present",
		Tasks: []string{
			`Built "Mini Machine" Figma plugin leveraging LLM APIs for real-time design feedback`,
			"Architected full-stack apps with Next.js, React, and Node.js",
			"Designed cloud infrastructure and AI/ML pipeline integrations",
			"Led distributed engineering team across multiple time zones",
			"Delivered AI-powered news platform with Arabic translation for ADIA in one week",
		},
		Summary: "Lead AI Engineer building production AI products, agentic systems, and scalable cloud architecture.",
	},
	{
		JobTitle: "Senior Software Engineer (Contractor)",
		Company:  "Blackstone",
		Slug:     "blackstone",
		Tenure:   "10/2024 - 04/2025",
		Tasks: []string{
			"Rebuilt internal UI component library (30+ components)",
			"Established front-end code quality standards and TypeScript enforcement",
			"Mentored junior engineers on React patterns and testing",
		},
		Summary: "Optimized shared component library for rendering performance, WCAG accessibility, and cross-team design consistency.",
	},
	{
		JobTitle: "Principal Engineer",
		Company:  "Pollox.ai",
		Slug:     "pollox",
		Tenure:   "01/2024 - 10/2024",
		Tasks: []string{
			"Led full-stack MVP for real estate search platform",
			"Integrated LLM-powered conversational AI chatbots",
			"Designed scalable architecture for property search and offer workflows",
		},
		Summary: "Led MVP development of a real estate platform with Next.js, React, and LLM-powered conversational AI.",
	},
	{
		JobTitle: "Technical Lead",
		Company:  "Clean Choice Energy",
		Slug:     "cleanchoice",
		Tenure:   "06/2023 - 12/2023",
		Tasks: []string{
			"Migrated core platform from Next.js to Remix",
			"Improved page load times by 25% via Redis caching",
			"Deployed Storybook to standardize UI component library",
		},
		Summary: "Led migration to Remix with Redis caching and front-end optimization, improving enrollment flow and marketing page performance.",
	},
	{
		JobTitle: "Senior Software Engineer",
		Company:  "Walmart",
		Slug:     "walmart",
		Tenure:   "06/2022 - 06/2023",
		Tasks: []string{
			"Built Tire Fitment Component and Related Products Carousel (15% cross-sell increase)",
			"Real-time product customization tools",
			"Reduced system downtime by 18% through on-call monitoring",
		},
		Summary: "Built high-impact e-commerce features for walmart.com while mentoring junior developers and reducing system downtime.",
	},
	{
		JobTitle: "Full Stack Developer",
		Company:  "WarnerMedia",
		Slug:     "warnermedia",
		Tenure:   "02/2020 - 06/2022",
		Tasks: []string{
			"Led full-stack development for CNN's internal agency",
			"Delivered dynamic ad units, landing pages, and internal tools",
			"Automated CI/CD pipelines with AWS and Terraform (100% deployment time reduction)",
		},
		Summary: "Led full-stack development for CNN's internal agency, automating CI/CD pipelines with AWS and Terraform.",
	},
	{
		JobTitle: "Front End Engineer",
		Company:  "Warner Bros. Digital Labs",
		Slug:     "warnerbros",
		Tenure:   "07/2018 - 07/2019",
		Tasks: []string{
			"Boomerang.com streaming platform",
			"DramaFever.com streaming platform",
			"DCUniverse.com streaming platform",
			"Harry Potter Wizarding World interactive features",
		},
		Summary: "Led front-end development for high-traffic streaming platforms and built interactive React.js features.",
	},
}

// Portfolio lists shipped projects.
var Portfolio = []Project{
	{Title: "Abraxane Pro", Slug: "abraxane", Tech: "Next.js, React", URL: "https://abraxanepro.com"},
	{Title: "Admerasia", Slug: "admerasia", Tech: "Next.js, React", URL: "https://admerasia.com"},
	{Title: "BeyBlade", Slug: "beyblade", Tech: "WordPress, SASS", URL: "https://beyblade.com"},
	{Title: "Pixacore", Slug: "pixacore", Tech: "React, Node.js", URL: "https://pixacore.com"},
	{Title: "NYC Hao Bao", Slug: "nychaobao", Tech: "Next.js, React", URL: "https://nychaobao.com"},
	{Title: "Go Yow", Slug: "goyow", Tech: "React, Node.js", URL: "https://goyow.com"},
	{Title: "Abbott Discovery", Slug: "abbott", Tech: "React, AWS", URL: "https://abbott-discovery.com"},
	{Title: "Emerson Collective", Slug: "emerson", Tech: "Episerver, C#, SASS", URL: "https://emersoncollective.com"},
}

// Skills lists skill groups.
var Skills = []SkillGroup{
	{Title: "AI/ML", Skills: []string{"LLM APIs (OpenAI, Anthropic, Gemini)", "Prompt Engineering", "RAG Pipelines", "Multi-Agent Orchestration", "Agentic System Design", "Vector Databases", "AI-Powered Chat & Search", "OSS Models"}},
	{Title: "AI Tools", Skills: []string{"Claude Code", "Hugging Face", "OpenClaw", "Ollama"}},
	{Title: "Languages", Skills: []string{"TypeScript", "JavaScript", "Python", "HTML", "CSS/SASS", "SQL"}},
	{Title: "Frameworks", Skills: []string{"Next.js", "React", "Remix", "Express.js", "Node.js", "Storybook", "Tailwind CSS", "Material UI"}},
	{Title: "Cloud & DevOps", Skills: []string{"AWS (Lambda, S3, SQS, Bedrock)", "Google Cloud", "Azure", "Redis", "Terraform", "CI/CD", "Docker", "Git"}},
	{Title: "Data", Skills: []string{"PostgreSQL", "MongoDB", "GraphQL", "REST APIs"}},
	{Title: "Platforms", Skills: []string{"Contentful", "Drupal", "Shopify", "WordPress", "DataDog", "Splunk", "Figma", "WCAG Accessibility"}},
}

// Tracks is the player's song list.
var Tracks = []Track{
	{Slug: "rem", Title: "Everybody Hurts", Artist: "REM", Album: "Automatic for the People"},
	{Slug: "angela", Title: "Angela", Artist: "Mötley Crüe", Album: "Decade of Decadence"},
	{Slug: "religion", Title: "Losing My Religion", Artist: "REM", Album: "Out of Time"},
	{Slug: "lady", Title: "Lady", Artist: "Styx", Album: "Best of Styx"},
	{Slug: "drummer", Title: "Little Drummer Boy", Artist: "Katherine K. Davis", Album: "PTXmas"},
}

// Education is the single education entry.
var Education = School{
	Name:  "Rutgers University, New Brunswick",
	Major: "Applied Economics",
}

// Channels are the TV's preset channels.
var Channels = []Channel{
	{ID: 0, Label: "Groove", VideoID: "VGnFLdQW39A"},
	{ID: 1, Label: "Beats", VideoID: "aB1yRz0HhdY"},
	{ID: 2, Label: "Chill", VideoID: "HcGNqrAtsgg"},
	{ID: 3, Label: "Shred", VideoID: "mmnwUgfNTsU"},
	{ID: 4, Label: "Waves", VideoID: "8w4tZE2k7AE"},
	{ID: 5, Label: "Jazz", VideoID: "rnXIjl_Rzy4"},
	{ID: 6, Label: "Live", VideoID: "hzvEVVCnfSU"},
}

// Resume is the document shown on the resume body.
var Resume = Document{
	Title:    "ENRIQUE CHONG",
	Subtitle: "Lead AI Engineer. 8 years of full-stack engineering experience specializing in AI/LLM-powered applications, agentic system design, and scalable cloud architecture.",
	Sections: []Section{
		{
			Heading: "Technical Expertise",
			Lines: []string{
				"AI/ML: LLM APIs (OpenAI, Anthropic, Gemini), Prompt Engineering, RAG Pipelines, Multi-Agent Orchestration",
				"Languages: TypeScript, JavaScript, Python, SQL",
				"Frameworks: Next.js, React, Express.js, Node.js",
				"Cloud: AWS (Lambda, S3, SQS, Bedrock), Google Cloud, Azure, Docker, Terraform",
			},
		},
		{
			Heading: "Experience",
			Lines: []string{
				"Lead AI Engineer, Code and Theory (02/2025 - Present)",
				"Built and shipped 'Mini Machine,' a custom Figma plugin leveraging LLM APIs and asset-based logic.",
			},
		},
		{
			Heading: "Achievements",
			Lines: []string{
				"Delivered an AI-powered news platform with Arabic translation in one week for ADIA",
				"Increased cross-sell revenue by 15% at Walmart through product carousel features",
				"Improved deployment times by 100% through CI/CD automation at WarnerMedia",
			},
		},
	},
	Footer: "linkedin.com/in/enrique-c-538669101 | github.com/echong112",
	URL:    "https://docs.google.com/document/d/1IfT5WiR6jMDkkhGa14Wf84mP3PCdo_dE9dJb8AJ5pXc/edit?tab=t.0",
}

// VideoURL returns the watch URL for a video id.
func VideoURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
