package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
)

type trackingService interface {
	IngestReport(ctx context.Context, busID string, image []byte, imageName, coordinates string) (*domain.Report, error)
	Latest(busID string) (domain.Coordinate, error)
	History(ctx context.Context, busID, date string) ([]domain.Report, error)
}

type uploadResponse struct {
	Message     string            `json:"message"`
	Filename    string            `json:"filename"`
	Coordinates domain.Coordinate `json:"coordinates"`
}

type reportResponse struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Time  int64   `json:"time"`
	Image string  `json:"image,omitempty"`
}

type TrackingHandler struct {
	tracking trackingService
}

func NewTrackingHandler(tracking trackingService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

func (h *TrackingHandler) Register(r *gin.RouterGroup) {
	r.POST("/upload/:busId", h.Upload)
	r.GET("/locations/:busId", h.LatestLocation)
	r.GET("/locations/:busId/:date", h.History)
}

// Upload ingests one camera report: a multipart "image" file plus a
// "coordinates" field formatted "<lat>/<lon>". Field extraction stays loose
// here; the service decides what is missing or malformed and in which order.
func (h *TrackingHandler) Upload(c *gin.Context) {
	busID := c.Param("busId")
	coordinates := c.PostForm("coordinates")

	var image []byte
	imageName := ""
	file, header, err := c.Request.FormFile("image")
	if err == nil {
		imageName = header.Filename
		image, err = io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			log.WithError(err).Error("reading uploaded image failed")
			c.String(http.StatusInternalServerError, "Internal Server Error.")
			return
		}
	}

	report, err := h.tracking.IngestReport(c.Request.Context(), busID, image, imageName, coordinates)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploadResponse{
		Message:     "Image and GPS data uploaded successfully.",
		Filename:    report.ImageRef,
		Coordinates: report.Coordinate,
	})
}

func (h *TrackingHandler) LatestLocation(c *gin.Context) {
	coord, err := h.tracking.Latest(c.Param("busId"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, coord)
}

func (h *TrackingHandler) History(c *gin.Context) {
	reports, err := h.tracking.History(c.Request.Context(), c.Param("busId"), c.Param("date"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	results := make([]reportResponse, len(reports))
	for i, rep := range reports {
		results[i] = reportResponse{
			Lat:   rep.Coordinate.Lat,
			Lon:   rep.Coordinate.Lon,
			Time:  rep.CapturedAt,
			Image: rep.ImageRef,
		}
	}
	c.JSON(http.StatusOK, results)
}

// writeError maps the error taxonomy onto HTTP statuses. Client rejections
// and not-found come back as plain text; anything else is a dependency
// failure, logged as a fault and safe for the client to retry.
func (h *TrackingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrBusNotAllowed):
		c.String(http.StatusBadRequest, "Bus ID not allowed.")
	case errors.Is(err, domain.ErrMissingImage):
		c.String(http.StatusBadRequest, "No image uploaded.")
	case errors.Is(err, domain.ErrMissingCoordinates):
		c.String(http.StatusBadRequest, "Coordinates are required.")
	case errors.Is(err, domain.ErrInvalidCoordinateFormat):
		c.String(http.StatusBadRequest, "Invalid coordinates format.")
	case errors.Is(err, domain.ErrInvalidDate):
		c.String(http.StatusBadRequest, "Invalid date format.")
	case errors.Is(err, domain.ErrLocationNotFound):
		c.String(http.StatusNotFound, "Location data not found.")
	default:
		log.WithError(err).Error("request failed")
		c.String(http.StatusInternalServerError, "Internal Server Error.")
	}
}
