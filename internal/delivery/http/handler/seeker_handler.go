package handler

import (
	"job-seeker/internal/delivery/http/middleware"
	"job-seeker/internal/repository"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SeekerHandler struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
}

func NewSeekerHandler(applications repository.ApplicationRepository, jobs repository.JobRepository) *SeekerHandler {
	return &SeekerHandler{applications: applications, jobs: jobs}
}

// ListForSeeker returns the seeker's applications, each enriched with the
// referenced job under jobInfo. Without an email query it returns an empty
// array, never the whole collection. When the referenced job no longer exists
// the jobInfo key is absent; consumers must handle that.
func (h *SeekerHandler) ListForSeeker(c fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.JSON([]repository.Document{})
	}

	applied, err := h.applications.ListBySeeker(c.Context(), email)
	if err != nil {
		return err
	}

	ids := make([]primitive.ObjectID, 0, len(applied))
	for _, a := range applied {
		raw, _ := a["jobId"].(string)
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			// Dangling or malformed reference; nothing to join.
			continue
		}
		ids = append(ids, id)
	}

	jobDocs, err := h.jobs.FindByIDs(c.Context(), ids)
	if err != nil {
		return err
	}

	byID := make(map[string]repository.Document, len(jobDocs))
	for _, j := range jobDocs {
		if id, ok := j["_id"].(primitive.ObjectID); ok {
			byID[id.Hex()] = j
		}
	}

	out := make([]repository.Document, 0, len(applied))
	for _, a := range applied {
		if raw, ok := a["jobId"].(string); ok {
			if j, ok := byID[raw]; ok {
				a["jobInfo"] = j
			}
		}
		out = append(out, a)
	}

	return c.JSON(out)
}

// Apply inserts the application unless the seeker already applied to that job,
// then bumps the job's applicant counter. The duplicate notice is a normal
// success payload, not an error. Check and insert are two store calls; the
// unique index on (jobId, seekerEmail) backstops the race between them.
func (h *SeekerHandler) Apply(c fiber.Ctx) error {
	var doc repository.Document
	if err := c.Bind().Body(&doc); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, middleware.MessageBadRequest, err)
	}

	jobID, _ := doc["jobId"].(string)
	seekerEmail, _ := doc["seekerEmail"].(string)

	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid job id", err)
	}

	existing, err := h.applications.FindBySeekerAndJob(c.Context(), jobID, seekerEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return c.JSON(fiber.Map{"message": "Already applied for this job."})
	}

	res, err := h.applications.Create(c.Context(), doc)
	if err != nil {
		return err
	}

	if err := h.jobs.IncrementApplicants(c.Context(), oid); err != nil {
		return err
	}

	return c.JSON(res)
}
