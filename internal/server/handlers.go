package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/abhisek/drill/internal/observability"
	"github.com/abhisek/drill/internal/practice"
	"github.com/abhisek/drill/internal/problems"
	"github.com/abhisek/drill/internal/store"
)

const defaultReviewLimit = 100

type createProblemRequest struct {
	Name string `json:"name"`
}

type suspendRequest struct {
	Reason *string `json:"reason"`
}

type createReviewRequest struct {
	ProblemID int  `json:"problem_id"`
	Correct   bool `json:"correct"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// questionResponse is a rendered question tagged with its problem id.
type questionResponse struct {
	*problems.Question
	ID int `json:"id"`
}

type problemWithReviews struct {
	store.Problem
	Reviews []store.Review `json:"reviews"`
}

// fail converts a repository error into a response, naming what was missing.
func fail(err error, what, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound(what)
	}
	return errors.Wrap(err, op)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, badRequest("invalid id: " + c.Param("id"))
	}
	return id, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, badRequest("invalid " + name + ": " + raw)
	}
	return v, nil
}

// POST /api/problems/
func (s *Server) createProblem(c echo.Context) error {
	var req createProblemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Name == "" {
		return badRequest("name is required")
	}
	if !problems.IsKnown(req.Name) {
		return toHTTPError(&problems.UnknownKindError{Kind: req.Name})
	}

	p, err := s.deps.Problems.Create(c.Request().Context(), req.Name)
	if err != nil {
		return errors.Wrap(err, "create problem")
	}
	return c.JSON(http.StatusOK, p)
}

// GET /api/problems/ renders a question for the next due problem, or an
// empty object when nothing is due.
func (s *Server) nextProblem(c echo.Context) error {
	ctx := c.Request().Context()
	card, err := s.deps.Practice.Next(ctx)
	if err != nil {
		return errors.Wrap(err, "next problem")
	}
	if card == nil {
		observability.FromContext(ctx, s.deps.Logger).Info("no problems due")
		return c.JSON(http.StatusOK, struct{}{})
	}
	return c.JSON(http.StatusOK, questionResponse{Question: card.Question, ID: card.Problem.ID})
}

// GET /api/problems/suspended
func (s *Server) listSuspended(c echo.Context) error {
	ps, err := s.deps.Problems.ListSuspended(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "list suspended problems")
	}
	return c.JSON(http.StatusOK, ps)
}

// POST /api/problems/:id/suspend
func (s *Server) suspendProblem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req suspendRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	p, err := s.deps.Problems.Suspend(c.Request().Context(), id, req.Reason)
	if err != nil {
		return fail(err, "Problem", "suspend problem")
	}
	return c.JSON(http.StatusOK, p)
}

// POST /api/problems/:id/unsuspend
func (s *Server) unsuspendProblem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := s.deps.Problems.Unsuspend(c.Request().Context(), id)
	if err != nil {
		return fail(err, "Problem", "unsuspend problem")
	}
	return c.JSON(http.StatusOK, p)
}

// GET /api/problems/:id
func (s *Server) getProblem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	p, err := s.deps.Problems.Get(ctx, id)
	if err != nil {
		return fail(err, "Problem", "get problem")
	}
	reviews, err := s.deps.Reviews.ListByProblem(ctx, id)
	if err != nil {
		return errors.Wrap(err, "list problem reviews")
	}
	return c.JSON(http.StatusOK, problemWithReviews{Problem: *p, Reviews: reviews})
}

// DELETE /api/problems/:id
func (s *Server) deleteProblem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.deps.Problems.Delete(c.Request().Context(), id); err != nil {
		return fail(err, "Problem", "delete problem")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Problem deleted"})
}

// POST /api/reviews/ records an answer. The review is returned even when
// the follow-up scheduling fails.
func (s *Server) createReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	res, err := s.deps.Practice.Submit(c.Request().Context(), practice.SubmitInput{
		ProblemID: req.ProblemID,
		Correct:   req.Correct,
	})
	if err != nil {
		return fail(err, "Problem", "submit review")
	}
	return c.JSON(http.StatusOK, res.Review)
}

// GET /api/reviews/?skip=&limit=
func (s *Server) listReviews(c echo.Context) error {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", defaultReviewLimit)
	if err != nil {
		return err
	}
	if limit == 0 {
		return c.JSON(http.StatusOK, []store.Review{})
	}
	reviews, err := s.deps.Reviews.List(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.Wrap(err, "list reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

// GET /api/reviews/problem/:id
func (s *Server) listProblemReviews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	reviews, err := s.deps.Reviews.ListByProblem(c.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "list problem reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

// DELETE /api/reviews/:id
func (s *Server) deleteReview(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.deps.Reviews.Delete(c.Request().Context(), id); err != nil {
		return fail(err, "Review", "delete review")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Review deleted"})
}

// GET /api/analytics/
func (s *Server) getAnalytics(c echo.Context) error {
	report, err := s.deps.Analytics.Report(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "build analytics")
	}
	return c.JSON(http.StatusOK, report)
}
