package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lovedays/internal/service"
)

type couplePayload struct {
	Partner1Name string `json:"partner1Name"`
	Partner2Name string `json:"partner2Name"`
	StartDate    string `json:"startDate"`
}

// GetCouple 返回当前情侣记录；未设置时返回 JSON null
func (a *API) GetCouple(c *gin.Context) {
	couple, err := a.couples.GetFirst()
	if err != nil {
		if errors.Is(err, service.ErrCoupleNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, couple)
}

// CreateCouple 建立情侣记录，完成初始设置
func (a *API) CreateCouple(c *gin.Context) {
	var payload couplePayload
	if !bindJSON(c, &payload, "invalid couple payload") {
		return
	}

	couple, err := a.couples.Create(service.CoupleInput{
		Partner1Name: payload.Partner1Name,
		Partner2Name: payload.Partner2Name,
		StartDate:    payload.StartDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, couple)
}

// UpdateCouple 编辑情侣记录；空字段保持原值
func (a *API) UpdateCouple(c *gin.Context) {
	var payload couplePayload
	if !bindJSON(c, &payload, "invalid couple payload") {
		return
	}

	couple, err := a.couples.Update(c.Param("id"), service.CoupleInput{
		Partner1Name: payload.Partner1Name,
		Partner2Name: payload.Partner2Name,
		StartDate:    payload.StartDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, couple)
}
