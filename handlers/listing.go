package handlers

import (
	"letsheal/models"

	"github.com/gin-gonic/gin"
)

// bindListState reads the list view state from the query. ?status is an alias for
// ?category, and ?toggle=<key> applies a column-header click on top of the bound
// sort, so the client can send back the state it was given plus the click.
func bindListState(c *gin.Context) (models.FilterState, error) {
	var state models.FilterState
	if err := c.ShouldBindQuery(&state); err != nil {
		return state, err
	}
	if status := c.Query("status"); status != "" {
		state.Category = status
	}
	if key := c.Query("toggle"); key != "" {
		state = state.ToggleSort(key)
	}
	return state, nil
}
