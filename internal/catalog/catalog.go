// Package catalog holds the curated list of target companies used by the
// company-fit analysis. The list is static application data, not user state.
package catalog

import "fmt"

// CompanyTarget describes one company's typical early-career opening.
type CompanyTarget struct {
	Company            string   `json:"company"`
	Role               string   `json:"role"`
	Skills             []string `json:"skills"`
	ApproxCompensation string   `json:"approx_CTC"`
}

// CompanyNotFoundError means the requested company is not in the catalog.
type CompanyNotFoundError struct {
	Company string
}

func (e *CompanyNotFoundError) Error() string {
	return fmt.Sprintf("company %q not found in database", e.Company)
}

// All returns the full catalog. Callers must not mutate the result.
func All() []CompanyTarget {
	return companies
}

// Lookup finds a company by exact name.
func Lookup(name string) (CompanyTarget, error) {
	for _, c := range companies {
		if c.Company == name {
			return c, nil
		}
	}
	return CompanyTarget{}, &CompanyNotFoundError{Company: name}
}

var companies = []CompanyTarget{
	{
		Company:            "Google India",
		Role:               "Software Engineer (Fresher/L3)",
		Skills:             []string{"C++", "Java", "Python", "DSA (Graphs/DP)", "System Design"},
		ApproxCompensation: "₹30–35 LPA",
	},
	{
		Company:            "Microsoft India",
		Role:               "Software Development Engineer (SDE)",
		Skills:             []string{"C#", "C++", "Java", "DSA", "Low Level Design"},
		ApproxCompensation: "₹40–45 LPA",
	},
	{
		Company:            "Amazon India",
		Role:               "SDE I",
		Skills:             []string{"Java", "C++", "DSA (Trees/Arrays)", "Leadership Principles", "LLD"},
		ApproxCompensation: "₹25–45 LPA",
	},
	{
		Company:            "Meta India",
		Role:               "Software Engineer",
		Skills:             []string{"C++", "Java", "Python", "Advanced DSA", "System Design"},
		ApproxCompensation: "₹30–50 LPA",
	},
	{
		Company:            "NVIDIA India",
		Role:               "System Software Engineer",
		Skills:             []string{"C", "C++", "OS Internals", "Computer Architecture", "CUDA"},
		ApproxCompensation: "₹25–35 LPA",
	},
	{
		Company:            "Apple India",
		Role:               "Software Engineer",
		Skills:             []string{"Swift", "Objective-C", "C++", "OS Concepts", "DSA"},
		ApproxCompensation: "₹30–40 LPA",
	},
	{
		Company:            "Adobe India",
		Role:               "MTS - Computer Scientist",
		Skills:             []string{"C++", "Java", "OS", "DBMS", "DSA"},
		ApproxCompensation: "₹25–35 LPA",
	},
	{
		Company:            "Salesforce India",
		Role:               "AMTS",
		Skills:             []string{"Java", "Spring Boot", "DSA", "System Design"},
		ApproxCompensation: "₹25–35 LPA",
	},
	{
		Company:            "Uber India",
		Role:               "Software Engineer I",
		Skills:             []string{"Go", "Java", "Python", "Distributed Systems", "DSA"},
		ApproxCompensation: "₹35–50 LPA",
	},
	{
		Company:            "LinkedIn India",
		Role:               "Software Engineer",
		Skills:             []string{"Java", "Python", "Hadoop", "System Design", "Concurrency"},
		ApproxCompensation: "₹35–50 LPA",
	},
	{
		Company:            "Netflix",
		Role:               "Senior Software Engineer",
		Skills:             []string{"Java", "SpringBoot", "Microservices", "System Design"},
		ApproxCompensation: "₹60+ LPA",
	},
	{
		Company:            "Flipkart",
		Role:               "SDE I",
		Skills:             []string{"Java", "DSA (DP/Graphs)", "Machine Coding", "HLD"},
		ApproxCompensation: "₹20–28 LPA",
	},
	{
		Company:            "Myntra",
		Role:               "Software Engineer",
		Skills:             []string{"Java", "Python", "DSA", "DBMS"},
		ApproxCompensation: "₹20–26 LPA",
	},
	{
		Company:            "Paytm",
		Role:               "Software Engineer",
		Skills:             []string{"Java", "Node.js", "Databases", "DSA"},
		ApproxCompensation: "₹15–22 LPA",
	},
	{
		Company:            "Zomato",
		Role:               "SDE I",
		Skills:             []string{"Python", "Golang", "DBMS", "DSA"},
		ApproxCompensation: "₹18–26 LPA",
	},
	{
		Company:            "Swiggy",
		Role:               "Software Development Engineer",
		Skills:             []string{"Java", "Go", "DSA", "LLD"},
		ApproxCompensation: "₹22–30 LPA",
	},
	{
		Company:            "Razorpay",
		Role:               "SDE",
		Skills:             []string{"PHP", "Go", "Architecture", "DSA"},
		ApproxCompensation: "₹20–28 LPA",
	},
	{
		Company:            "CRED",
		Role:               "Backend Engineer",
		Skills:             []string{"Java", "DynamoDB", "Microservices", "DSA"},
		ApproxCompensation: "₹24–35 LPA",
	},
	{
		Company:            "Zerodha",
		Role:               "Software Engineer",
		Skills:             []string{"Python", "Go", "PostgreSQL", "Flutter"},
		ApproxCompensation: "₹15–25 LPA",
	},
	{
		Company:            "Goldman Sachs",
		Role:               "Analyst",
		Skills:             []string{"Java", "C++", "DSA", "Quantitative Aptitude"},
		ApproxCompensation: "₹20–28 LPA",
	},
	{
		Company:            "JP Morgan Chase",
		Role:               "Software Engineer",
		Skills:             []string{"Java", "Python", "React", "DSA"},
		ApproxCompensation: "₹16–22 LPA",
	},
	{
		Company:            "Morgan Stanley",
		Role:               "Technology Analyst",
		Skills:             []string{"Java", "C++", "C#", "OOD", "DSA"},
		ApproxCompensation: "₹18–25 LPA",
	},
	{
		Company:            "Oracle",
		Role:               "Member of Technical Staff",
		Skills:             []string{"Java", "SQL", "Cloud Concepts", "DSA"},
		ApproxCompensation: "₹16–30 LPA",
	},
	{
		Company:            "Cisco",
		Role:               "Software Engineer",
		Skills:             []string{"C", "C++", "Python", "Networking", "DSA"},
		ApproxCompensation: "₹15–22 LPA",
	},
	{
		Company:            "Intuit",
		Role:               "Software Engineer 1",
		Skills:             []string{"Java", "React", "Spring", "DSA"},
		ApproxCompensation: "₹25–32 LPA",
	},
	{
		Company:            "Atlassian",
		Role:               "Software Engineer",
		Skills:             []string{"Java", "React", "Distributed Systems", "DSA"},
		ApproxCompensation: "₹30–50 LPA",
	},
	{
		Company:            "Samsung R&D",
		Role:               "Engineer",
		Skills:             []string{"C", "C++", "Java", "DSA (Advanced)", "OS"},
		ApproxCompensation: "₹16–22 LPA",
	},
	{
		Company:            "Qualcomm",
		Role:               "Software Engineer",
		Skills:             []string{"C", "C++", "Embedded Systems", "OS"},
		ApproxCompensation: "₹18–26 LPA",
	},
	{
		Company:            "Intel",
		Role:               "Software Development Engineer",
		Skills:             []string{"C++", "Python", "Computer Architecture", "OS"},
		ApproxCompensation: "₹15–22 LPA",
	},
	{
		Company:            "Rakuten India",
		Role:               "Software Engineer",
		Skills:             []string{"Java", "Python", "Cloud", "DSA"},
		ApproxCompensation: "₹18–25 LPA",
	},
}
