package resume

import "io"

// ResumeRecord описывает структурированное резюме, которое получает форма.
// Missing values are empty strings, never nil.
type ResumeRecord struct {
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	PhoneNumber    string           `json:"phoneNumber"`
	LinkedinURL    string           `json:"linkedinUrl"`
	WebsiteURL     string           `json:"websiteUrl"`
	Summary        string           `json:"summary"`
	Skills         []string         `json:"skills"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
}

type WorkExperience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"` // free text, e.g. "Jan 2020"
	EndDate     string `json:"endDate"`   // free text or "Present"
	Description string `json:"description"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// normalize replaces nil slices so the record always serializes with [] instead of null.
func (r *ResumeRecord) normalize() {
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.WorkExperience == nil {
		r.WorkExperience = []WorkExperience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
}

// Clone returns a deep copy, so callers can hand records out without sharing slices.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	out.Skills = append([]string{}, r.Skills...)
	out.WorkExperience = append([]WorkExperience{}, r.WorkExperience...)
	out.Education = append([]Education{}, r.Education...)
	return out
}

// Upload описывает файл, выбранный пользователем, до чтения.
type Upload struct {
	Filename  string
	MediaType string // declared by the client
	Size      int64
	Reader    io.Reader
}

// Document хранит прочитанный файл в base64, готовый к отправке в модель.
type Document struct {
	Filename  string
	MediaType string
	Base64    string
	Size      int64
}
