package api

import (
	"errors"
	"net/http"

	reqdto "fleet-rental/internal/handler/dto/request"
	resdto "fleet-rental/internal/handler/dto/response"
	"fleet-rental/internal/usecase/commands"
	"fleet-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RuleHandler struct {
	ruleCommands commands.RuleCommands
	ruleQueries  queries.RuleQueries
}

func NewRuleHandler(ruleCommands commands.RuleCommands, ruleQueries queries.RuleQueries) *RuleHandler {
	return &RuleHandler{
		ruleCommands: ruleCommands,
		ruleQueries:  ruleQueries,
	}
}

// @Summary List pricing rules
// @Tags rules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RuleResponse
// @Router /admin/rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	views, err := h.ruleQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRuleViews(views))
}

// @Summary Get pricing rule
// @Tags rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 200 {object} resdto.RuleResponse
// @Failure 404 {object} map[string]string
// @Router /admin/rules/{id} [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	view, err := h.ruleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRuleViewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pricing rule not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRuleView(view))
}

// @Summary Create pricing rule
// @Description Create a special pricing rule; it takes effect immediately for future price computations
// @Tags rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RuleRequest true "Rule definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	params, ok := h.bindRuleParams(c)
	if !ok {
		return
	}

	id, err := h.ruleCommands.Create(c.Request.Context(), params)
	if err != nil {
		respondRuleCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update pricing rule
// @Description Rewrite a rule's definition; its precedence (creation time) is preserved
// @Tags rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.RuleRequest true "Rule definition"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/rules/{id} [put]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	params, ok := h.bindRuleParams(c)
	if !ok {
		return
	}

	if err := h.ruleCommands.Update(c.Request.Context(), id, params); err != nil {
		respondRuleCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete pricing rule
// @Tags rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID format",
		})
		return
	}

	if err := h.ruleCommands.Delete(c.Request.Context(), id); err != nil {
		respondRuleCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RuleHandler) bindRuleParams(c *gin.Context) (commands.RuleParams, bool) {
	var req reqdto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return commands.RuleParams{}, false
	}

	params, err := req.ToParams()
	if err != nil {
		respondDateRangeError(c, err)
		return commands.RuleParams{}, false
	}
	return params, true
}

func respondRuleCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRuleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Pricing rule not found",
		})
	case errors.Is(err, commands.ErrInvalidRule):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid pricing rule",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
