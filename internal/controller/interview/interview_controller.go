package interview

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockview/config"
	"github.com/lshigami/mockview/internal/controller"
	"github.com/lshigami/mockview/internal/dto"
	"github.com/lshigami/mockview/internal/service"
	"github.com/rs/zerolog/log"
)

const interviewNotFound = "Interview not found"

type InterviewController struct {
	interviewService  service.InterviewService
	submissionService service.SubmissionService
	resultsService    service.ResultsService
	respond           controller.Responder
}

func NewInterviewController(
	is service.InterviewService,
	ss service.SubmissionService,
	rs service.ResultsService,
	cfg *config.Config,
) *InterviewController {
	return &InterviewController{
		interviewService:  is,
		submissionService: ss,
		resultsService:    rs,
		respond:           controller.Responder{Production: cfg.Server.IsProduction()},
	}
}

func (c *InterviewController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/interview-details/:id", c.GetInterviewDetails)
	api.GET("/interview-questions/:id", c.GetInterviewQuestions)
	api.POST("/submit-interview", c.SubmitInterview)
	api.GET("/interview-results/:id", c.GetInterviewResults)

	api.POST("/interviews", c.CreateInterview)
	api.GET("/interviews", c.ListInterviews)
	api.GET("/interviews/:id/submissions", c.ListSubmissions)
}

// CreateInterview godoc
// @Summary Create a mock interview
// @Description Generates interview questions for the job and stores a new interview definition.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param interview body dto.CreateInterviewRequest true "Job details"
// @Success 201 {object} dto.Response{data=dto.InterviewResponse}
// @Failure 400 {object} dto.Response "Invalid input or unusable model output"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /interviews [post]
func (c *InterviewController) CreateInterview(ctx *gin.Context) {
	var req dto.CreateInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respond.BadRequest(ctx, "Invalid request body", err)
		return
	}

	resp, err := c.interviewService.CreateInterview(ctx.Request.Context(), req)
	if err != nil {
		c.respond.Error(ctx, err, "Failed to create interview", interviewNotFound)
		return
	}
	c.respond.Created(ctx, resp, "Interview created")
}

// ListInterviews godoc
// @Summary List mock interviews
// @Description Lists interview definitions, newest first. Filter by creator with createdBy.
// @Tags Interviews
// @Produce json
// @Param createdBy query string false "Creator id"
// @Success 200 {object} dto.Response{data=[]dto.InterviewResponse}
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	interviews, err := c.interviewService.ListInterviews(ctx.Request.Context(), ctx.Query("createdBy"))
	if err != nil {
		c.respond.Error(ctx, err, "Failed to list interviews", interviewNotFound)
		return
	}
	c.respond.OK(ctx, interviews)
}

// GetInterviewDetails godoc
// @Summary Get interview details
// @Description Looks the id up as a mock id first, then as the interview's primary id.
// @Tags Interviews
// @Produce json
// @Param id path string true "Mock id or interview id"
// @Success 200 {object} dto.Response{data=dto.InterviewDetailsResponse}
// @Failure 404 {object} dto.Response "Interview not found"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /interview-details/{id} [get]
func (c *InterviewController) GetInterviewDetails(ctx *gin.Context) {
	details, err := c.interviewService.GetInterviewDetails(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respond.Error(ctx, err, "Failed to fetch interview details", interviewNotFound)
		return
	}
	c.respond.OK(ctx, details)
}

// GetInterviewQuestions godoc
// @Summary Get interview questions
// @Tags Interviews
// @Produce json
// @Param id path string true "Mock id or interview id"
// @Success 200 {object} dto.Response{data=[]dto.QuestionResponse}
// @Failure 404 {object} dto.Response "Interview not found"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /interview-questions/{id} [get]
func (c *InterviewController) GetInterviewQuestions(ctx *gin.Context) {
	questions, err := c.interviewService.GetInterviewQuestions(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respond.Error(ctx, err, "Failed to fetch interview questions", interviewNotFound)
		return
	}
	c.respond.OK(ctx, questions)
}

// SubmitInterview godoc
// @Summary Submit a completed interview
// @Description Stores the answers and per-answer feedback as a new submission.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param submission body dto.SubmitInterviewRequest true "Answers and feedback, index-aligned with the questions"
// @Success 200 {object} dto.Response{data=dto.SubmissionResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 404 {object} dto.Response "Interview not found"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /submit-interview [post]
func (c *InterviewController) SubmitInterview(ctx *gin.Context) {
	var req dto.SubmitInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respond.BadRequest(ctx, "Invalid request body", err)
		return
	}

	resp, err := c.submissionService.SubmitInterview(ctx.Request.Context(), req)
	if err != nil {
		c.respond.Error(ctx, err, "Failed to submit interview", interviewNotFound)
		return
	}
	log.Info().Str("submissionID", resp.ID).Msg("Interview submission stored")
	c.respond.OKWithMessage(ctx, resp, "Interview submitted successfully")
}

// ListSubmissions godoc
// @Summary List submissions of an interview
// @Tags Interviews
// @Produce json
// @Param id path string true "Mock id or interview id"
// @Success 200 {object} dto.Response{data=[]dto.SubmissionResponse}
// @Failure 404 {object} dto.Response "Interview not found"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /interviews/{id}/submissions [get]
func (c *InterviewController) ListSubmissions(ctx *gin.Context) {
	submissions, err := c.submissionService.ListSubmissions(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respond.Error(ctx, err, "Failed to list submissions", interviewNotFound)
		return
	}
	c.respond.OK(ctx, submissions)
}

// GetInterviewResults godoc
// @Summary Get interview results
// @Description Questions, the latest submission's answers and per-question feedback with the overall rating.
// @Tags Interviews
// @Produce json
// @Param id path string true "Mock id or interview id"
// @Success 200 {object} dto.Response{data=dto.InterviewResultsResponse}
// @Failure 404 {object} dto.Response "Interview not found"
// @Failure 500 {object} dto.Response "Server error; error detail only outside production"
// @Router /interview-results/{id} [get]
func (c *InterviewController) GetInterviewResults(ctx *gin.Context) {
	results, err := c.resultsService.GetInterviewResults(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respond.Error(ctx, err, "Server error", interviewNotFound)
		return
	}
	c.respond.OK(ctx, results)
}
