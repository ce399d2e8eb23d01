package testutil

import (
	"net/http"
	"testing"

	"shareit/internal/middleware"
	"shareit/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMakeSharerRequest_SetsHeader(t *testing.T) {
	router := SetupRouter()
	router.POST("/items", middleware.SharerUser(), func(c *gin.Context) {
		var body map[string]string
		_ = c.ShouldBindJSON(&body)
		response.Created(c, gin.H{"owner": middleware.GetUserID(c), "name": body["name"]})
	})

	w := MakeSharerRequest(t, router, http.MethodPost, "/items", 7, map[string]string{"name": "Drill"})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := ParseAPIResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, float64(7), resp.Data["owner"])
	assert.Equal(t, "Drill", resp.Data["name"])
}

func TestMakeRequest_WithoutHeader(t *testing.T) {
	router := SetupRouter()
	router.GET("/bookings", middleware.SharerUser(), func(c *gin.Context) {
		response.Success(c, []string{})
	})

	w := MakeRequest(t, router, http.MethodGet, "/bookings", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing X-Sharer-User-Id header", ParseEnvelope(t, w).Error)
}

func TestSetUserID(t *testing.T) {
	c, _ := CreateTestContext()

	SetUserID(c, 12)

	assert.Equal(t, int64(12), middleware.GetUserID(c))
}

func TestContext_HasDeadline(t *testing.T) {
	ctx := Context(t)

	_, ok := ctx.Deadline()
	assert.True(t, ok)
}
