package sample

import (
	"math/rand"
	"strings"
)

var firstNames = []string{
	"James", "Emma", "Michael", "Sophia", "William", "Olivia", "Alexander", "Isabella",
	"Daniel", "Ava", "David", "Mia", "Joseph", "Charlotte", "Matthew", "Amelia",
	"Andrew", "Harper", "Lucas", "Evelyn", "Samuel", "Abigail", "Christopher", "Emily",
	"John", "Elizabeth", "Dylan", "Sofia", "Nathan", "Victoria",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
}

var roles = []string{
	"Software Engineer",
	"Senior Software Engineer",
	"Full Stack Developer",
	"Frontend Developer",
	"Backend Developer",
	"DevOps Engineer",
	"QA Engineer",
	"UI/UX Designer",
	"Product Manager",
	"Project Manager",
	"Data Scientist",
	"Machine Learning Engineer",
	"Systems Architect",
	"Cloud Engineer",
	"Security Engineer",
}

var projects = []string{
	"ACME Inc Website",
	"Intel Mobile App",
	"Tesla Navigation System",
	"SpaceX Mission Control",
	"Amazon Warehouse Automation",
	"Google Cloud Integration",
	"Microsoft Office Add-in",
	"Apple Health Platform",
	"Meta VR Experience",
	"Netflix Streaming Service",
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}

func randomName(rng *rand.Rand) string {
	return pick(rng, firstNames) + " " + pick(rng, lastNames)
}

func salaryForRole(rng *rand.Rand, role string) int64 {
	base := int64(90000)
	if strings.HasPrefix(role, "Senior") {
		base = 130000
	}
	return base + rng.Int63n(30000)
}
