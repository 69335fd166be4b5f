package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-seeker/internal/delivery/http/middleware"
	"job-seeker/internal/pkg/jwt"
	"job-seeker/internal/repository"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockJobRepository struct {
	docs       map[primitive.ObjectID]repository.Document
	increments map[primitive.ObjectID]int
	created    []repository.Document
	err        error
}

func newMockJobRepository() *mockJobRepository {
	return &mockJobRepository{
		docs:       make(map[primitive.ObjectID]repository.Document),
		increments: make(map[primitive.ObjectID]int),
	}
}

func (m *mockJobRepository) seed(doc repository.Document) primitive.ObjectID {
	id := primitive.NewObjectID()
	doc["_id"] = id
	m.docs[id] = doc
	return id
}

func (m *mockJobRepository) ListAll(context.Context) ([]repository.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Document, 0, len(m.docs))
	for _, d := range m.docs {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockJobRepository) GetByID(_ context.Context, id primitive.ObjectID) (repository.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.docs[id], nil
}

func (m *mockJobRepository) ListByOwnerEmail(_ context.Context, email string) ([]repository.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Document, 0)
	for _, d := range m.docs {
		if email == "" || d["userEmail"] == email {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockJobRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]repository.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Document, 0, len(ids))
	for _, id := range ids {
		if d, ok := m.docs[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockJobRepository) Create(_ context.Context, job repository.Document) (repository.InsertResult, error) {
	if m.err != nil {
		return repository.InsertResult{}, m.err
	}
	id := m.seed(job)
	m.created = append(m.created, job)
	return repository.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *mockJobRepository) DeleteByID(_ context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	if m.err != nil {
		return repository.DeleteResult{}, m.err
	}
	if _, ok := m.docs[id]; !ok {
		return repository.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
	}
	delete(m.docs, id)
	return repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *mockJobRepository) ReplaceFields(_ context.Context, id primitive.ObjectID, fields repository.Document) (repository.UpdateResult, error) {
	if m.err != nil {
		return repository.UpdateResult{}, m.err
	}
	d, ok := m.docs[id]
	if !ok {
		return repository.UpdateResult{Acknowledged: true}, nil
	}
	for k, v := range fields {
		d[k] = v
	}
	return repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockJobRepository) IncrementApplicants(_ context.Context, id primitive.ObjectID) error {
	if m.err != nil {
		return m.err
	}
	m.increments[id]++
	return nil
}

type mockApplicationRepository struct {
	apps []repository.Document
	err  error
}

func newMockApplicationRepository() *mockApplicationRepository {
	return &mockApplicationRepository{}
}

func (m *mockApplicationRepository) ListBySeeker(_ context.Context, email string) ([]repository.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.Document, 0)
	for _, a := range m.apps {
		if a["seekerEmail"] == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepository) FindBySeekerAndJob(_ context.Context, jobID, email string) (repository.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, a := range m.apps {
		if a["jobId"] == jobID && a["seekerEmail"] == email {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockApplicationRepository) Create(_ context.Context, application repository.Document) (repository.InsertResult, error) {
	if m.err != nil {
		return repository.InsertResult{}, m.err
	}
	id := primitive.NewObjectID()
	application["_id"] = id
	m.apps = append(m.apps, application)
	return repository.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *mockApplicationRepository) DeleteByJobID(_ context.Context, jobID string) (repository.DeleteResult, error) {
	if m.err != nil {
		return repository.DeleteResult{}, m.err
	}
	kept := m.apps[:0]
	var removed int64
	for _, a := range m.apps {
		if a["jobId"] == jobID {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	m.apps = kept
	return repository.DeleteResult{Acknowledged: true, DeletedCount: removed}, nil
}

func (m *mockApplicationRepository) EnsureIndexes(context.Context) error { return nil }

// newTestApp wires the real route surface over mock repositories, including
// the cookie auth gate on the two protected routes.
func newTestApp(jobs repository.JobRepository, applications repository.ApplicationRepository) (*fiber.App, jwt.Service) {
	svc := jwt.NewHMACService("test-secret", time.Hour)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	gate := middleware.NewAuthMiddleware(svc).Middleware()
	jh := NewJobHandler(jobs, applications)
	sh := NewSeekerHandler(applications, jobs)
	ah := NewAuthHandler(svc)

	app.Get("/", NewHealthHandler().Liveness)
	app.Post("/jwt", ah.IssueToken)
	app.Post("/logout", ah.Logout)
	app.Get("/jobs", jh.List)
	app.Get("/jobs/:id", jh.GetByID)
	app.Get("/jobFilter", jh.FilterByOwner, gate)
	app.Post("/jobs", jh.Create, gate)
	app.Delete("/deleteJob/:id", jh.Delete)
	app.Patch("/updatePost/:id", jh.Update)
	app.Get("/seekers", sh.ListForSeeker)
	app.Post("/seekers", sh.Apply)

	return app, svc
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func withToken(t *testing.T, req *http.Request, svc jwt.Service, email string) *http.Request {
	t.Helper()
	tok, err := svc.Issue(email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: tok})
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("unmarshal %q: %v", b, err)
	}
}
