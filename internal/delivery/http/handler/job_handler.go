package handler

import (
	"job-seeker/internal/delivery/http/dto"
	"job-seeker/internal/delivery/http/middleware"
	"job-seeker/internal/repository"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobHandler struct {
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

func NewJobHandler(jobs repository.JobRepository, applications repository.ApplicationRepository) *JobHandler {
	return &JobHandler{jobs: jobs, applications: applications}
}

func (h *JobHandler) List(c fiber.Ctx) error {
	docs, err := h.jobs.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	id, err := jobIDFromParams(c)
	if err != nil {
		return err
	}

	doc, err := h.jobs.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	// nil doc serializes as null, matching a miss on the store side.
	return c.JSON(doc)
}

// FilterByOwner lists jobs owned by the query email. The guard compares the
// query against the token identity before any filtering happens; an absent
// query email falls through to the unfiltered list.
func (h *JobHandler) FilterByOwner(c fiber.Ctx) error {
	email := c.Query("email")
	if email != middleware.EmailFromCtx(c) {
		return middleware.NewAppError(fiber.StatusForbidden, middleware.MessageForbidden, nil)
	}

	docs, err := h.jobs.ListByOwnerEmail(c.Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var doc repository.Document
	if err := c.Bind().Body(&doc); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, middleware.MessageBadRequest, err)
	}

	userEmail, _ := doc["userEmail"].(string)
	if userEmail != middleware.EmailFromCtx(c) {
		return middleware.NewAppError(fiber.StatusForbidden, middleware.MessageForbidden, nil)
	}

	res, err := h.jobs.Create(c.Context(), doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Delete removes the job, then every application referencing it. The cascade
// matches applications on the raw path id string. The two deletes are
// independent store calls; no ownership check is performed on this route.
func (h *JobHandler) Delete(c fiber.Ctx) error {
	rawID := c.Params("id")
	id, err := jobIDFromParams(c)
	if err != nil {
		return err
	}

	res, err := h.jobs.DeleteByID(c.Context(), id)
	if err != nil {
		return err
	}
	if _, err := h.applications.DeleteByJobID(c.Context(), rawID); err != nil {
		return err
	}
	return c.JSON(res)
}

// Update overwrites the fixed field set unconditionally with caller-supplied
// values. No ownership check is performed on this route.
func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := jobIDFromParams(c)
	if err != nil {
		return err
	}

	var req dto.JobUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, middleware.MessageBadRequest, err)
	}

	res, err := h.jobs.ReplaceFields(c.Context(), id, repository.Document{
		"jobBanner":           req.JobBanner,
		"companyName":         req.CompanyName,
		"companyLogo":         req.CompanyLogo,
		"jobTitle":            req.JobTitle,
		"loggedInUser":        req.LoggedInUser,
		"jobCategory":         req.JobCategory,
		"salaryRange":         req.SalaryRange,
		"jobDescription":      req.JobDescription,
		"jobPostingDate":      req.JobPostingDate,
		"applicationDeadline": req.ApplicationDeadline,
		"vacancy":             req.Vacancy,
		"jobApplicantsNumber": req.JobApplicantsNumber,
		"userEmail":           req.UserEmail,
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// jobIDFromParams validates the opaque id shape at the boundary so malformed
// input maps to a clean 400 instead of a store-level failure.
func jobIDFromParams(c fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, middleware.NewAppError(fiber.StatusBadRequest, "invalid job id", err)
	}
	return id, nil
}
