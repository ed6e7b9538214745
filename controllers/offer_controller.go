package controllers

import (
	goerrors "errors"
	"strconv"
	"time"

	"khachsan/dto"
	"khachsan/errors"
	"khachsan/models"
	"khachsan/response"
	"khachsan/services"
	"khachsan/validator"

	"github.com/gin-gonic/gin"
)

// OfferController phục vụ quản lý và đặt phòng theo ưu đãi
type OfferController struct {
	offer *services.OfferService
}

func NewOfferController(offer *services.OfferService) *OfferController {
	return &OfferController{offer: offer}
}

func convertToOfferResponse(offer *models.PromotionOffer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:              offer.ID,
		HotelID:         offer.HotelID,
		RoomTypeID:      offer.RoomTypeID,
		Name:            offer.Name,
		DiscountedPrice: offer.DiscountedPrice,
		TotalRooms:      offer.TotalRooms,
		AvailableRooms:  offer.AvailableRooms,
		StartTime:       offer.StartTime.Format(time.RFC3339),
		EndTime:         offer.EndTime.Format(time.RFC3339),
		IsActive:        offer.IsActive,
	}
}

// BookWithOffer đặt phòng theo ưu đãi
// POST /promotion-offers/book
func (oc *OfferController) BookWithOffer(c *gin.Context) {
	var request dto.BookOfferRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateStruct(&request); err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}

	checkIn, checkOut, err := validator.ParseDateRange(request.CheckInDate, request.CheckOutDate)
	if err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}

	booking, offer, err := oc.offer.BookWithOffer(services.BookOfferInput{
		OfferID:  request.OfferID,
		UserID:   request.UserID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   request.Adults,
		Children: request.Children,
	})
	if err != nil {
		switch {
		case goerrors.Is(err, errors.ErrOfferNotFound):
			response.NotFound(c)
		case goerrors.Is(err, errors.ErrOfferUnavailable):
			response.BadRequestWithData(c, "Ưu đãi không khả dụng hoặc đã hết suất",
				gin.H{"reason": "offer_unavailable"})
		default:
			response.ServerError(c)
		}
		return
	}

	response.Created(c, dto.BookOfferResponse{
		Booking: convertToBookingResponse(booking),
		Offer:   convertToOfferResponse(offer),
	})
}

// CreateOffer tạo ưu đãi mới
// POST /promotion-offers
func (oc *OfferController) CreateOffer(c *gin.Context) {
	var request dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateStruct(&request); err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}

	startTime, err := validator.ParseTime(request.StartTime)
	if err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}
	endTime, err := validator.ParseTime(request.EndTime)
	if err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}

	offer := models.PromotionOffer{
		HotelID:         request.HotelID,
		RoomTypeID:      request.RoomTypeID,
		Name:            request.Name,
		DiscountedPrice: request.DiscountedPrice,
		TotalRooms:      request.TotalRooms,
		StartTime:       startTime,
		EndTime:         endTime,
	}
	if err := oc.offer.CreateOffer(&offer); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Created(c, convertToOfferResponse(&offer))
}

// CancelOffer tắt ưu đãi
// PUT /promotion-offers/:id/cancel
func (oc *OfferController) CancelOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	offer, err := oc.offer.CancelOffer(uint(id))
	if err != nil {
		if goerrors.Is(err, errors.ErrOfferNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Đã hủy ưu đãi", convertToOfferResponse(offer))
}

// GetOffers liệt kê ưu đãi
// GET /promotion-offers?ma_khach_san
func (oc *OfferController) GetOffers(c *gin.Context) {
	var hotelID uint
	if hotelStr := c.Query("ma_khach_san"); hotelStr != "" {
		parsed, err := strconv.ParseUint(hotelStr, 10, 32)
		if err != nil {
			response.BadRequest(c, "ma_khach_san không hợp lệ")
			return
		}
		hotelID = uint(parsed)
	}

	offers, err := oc.offer.ListOffers(hotelID)
	if err != nil {
		response.ServerError(c)
		return
	}

	offerResponses := make([]dto.OfferResponse, 0, len(offers))
	for i := range offers {
		offerResponses = append(offerResponses, convertToOfferResponse(&offers[i]))
	}

	response.Success(c, offerResponses)
}
