package resume

import (
	"context"
	"sync"

	"github.com/artem13815/resumefill/pkg/llm"
)

// fakeModel records requests and replies with a canned text or error.
type fakeModel struct {
	mu    sync.Mutex
	reply string
	err   error
	calls []llm.Request
}

func (m *fakeModel) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *fakeModel) Name() string { return "fake-model" }

func (m *fakeModel) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

const janeDoe = `{
  "fullName": "Jane Doe",
  "email": "jane@x.io",
  "phoneNumber": "",
  "linkedinUrl": "",
  "websiteUrl": "",
  "summary": "Engineer",
  "skills": ["Go"],
  "workExperience": [
    {"company": "Acme", "title": "Dev", "startDate": "Jan 2020", "endDate": "Present", "description": "Built APIs"}
  ],
  "education": []
}`
