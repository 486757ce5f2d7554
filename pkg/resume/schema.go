package resume

import "github.com/artem13815/resumefill/pkg/llm"

// Instruction is the fixed text part sent next to every document.
const Instruction = "Analyze the provided resume document. Extract all relevant information and structure it " +
	"precisely according to the provided JSON schema. Pay close attention to dates, job descriptions, " +
	"and educational details. If a field like a website URL is not present, return an empty string for it. " +
	"Never omit a field and never use null."

// Schema is the output contract for extraction. It is shared by the provider
// request and by local validation of the response.
var Schema = buildSchema()

func buildSchema() *llm.Schema {
	str := func(desc string) *llm.Schema {
		return &llm.Schema{Type: llm.TypeString, Description: desc}
	}

	work := &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"company":     str(""),
			"title":       str(""),
			"startDate":   str("Format as 'Month YYYY' or 'YYYY-MM-DD'."),
			"endDate":     str("Format as 'Month YYYY', 'YYYY-MM-DD', or 'Present'."),
			"description": str("Description of responsibilities and achievements."),
		},
		Order:    []string{"company", "title", "startDate", "endDate", "description"},
		Required: []string{"company", "title", "startDate", "endDate", "description"},
	}
	edu := &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"institution": str(""),
			"degree":      str(""),
			"startDate":   str("Format as 'Month YYYY' or 'YYYY-MM-DD'."),
			"endDate":     str("Format as 'Month YYYY' or 'YYYY-MM-DD'."),
		},
		Order:    []string{"institution", "degree", "startDate", "endDate"},
		Required: []string{"institution", "degree", "startDate", "endDate"},
	}

	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"fullName":    str("Full name of the candidate."),
			"email":       str("Email address of the candidate."),
			"phoneNumber": str("Phone number of the candidate."),
			"linkedinUrl": str("URL to the candidate's LinkedIn profile."),
			"websiteUrl":  str("URL to the candidate's personal website or portfolio."),
			"summary":     str("A brief summary or objective from the resume."),
			"skills": {
				Type:        llm.TypeArray,
				Description: "A list of skills mentioned in the resume.",
				Items:       str(""),
			},
			"workExperience": {
				Type:        llm.TypeArray,
				Description: "A list of work experiences.",
				Items:       work,
			},
			"education": {
				Type:        llm.TypeArray,
				Description: "A list of educational qualifications.",
				Items:       edu,
			},
		},
		Order: []string{
			"fullName", "email", "phoneNumber", "linkedinUrl", "websiteUrl",
			"summary", "skills", "workExperience", "education",
		},
		// phone, linkedin and website stay optional in the schema; they decode to "".
		Required: []string{"fullName", "email", "summary", "skills", "workExperience", "education"},
	}
}
