// Package servers holds the HTTP contract of the API described in
// openapi.yaml: request and response bodies, the ServerInterface the echo
// adapter implements and the wrapper that binds path and query parameters.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/swaggo/swag"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Stop defines model for Stop.
type Stop struct {
	CollectionDate openapi_types.Date `json:"collectionDate"`
	Name           string             `json:"name"`
}

// NewTour defines model for NewTour.
type NewTour struct {
	CollectionDate     openapi_types.Date `json:"collectionDate"`
	DepartureDate      openapi_types.Date `json:"departureDate"`
	DestinationCountry string             `json:"destinationCountry"`
	OriginCountry      string             `json:"originCountry"`
	Route              []Stop             `json:"route"`
	TotalCapacity      int                `json:"totalCapacity"`
	Type               string             `json:"type"`
}

// TourPatch defines model for TourPatch.
type TourPatch struct {
	Route         *[]Stop `json:"route,omitempty"`
	TotalCapacity *int    `json:"totalCapacity,omitempty"`
}

// Tour defines model for Tour.
type Tour struct {
	BookingCounts      map[string]int     `json:"bookingCounts"`
	CarrierId          openapi_types.UUID `json:"carrierId"`
	CollectionDate     openapi_types.Date `json:"collectionDate"`
	DepartureDate      openapi_types.Date `json:"departureDate"`
	DestinationCountry string             `json:"destinationCountry"`
	Id                 int64              `json:"id"`
	OriginCountry      string             `json:"originCountry"`
	RemainingCapacity  int                `json:"remainingCapacity"`
	Route              []Stop             `json:"route"`
	Status             string             `json:"status"`
	StatusColor        string             `json:"statusColor"`
	StatusLabel        string             `json:"statusLabel"`
	TotalCapacity      int                `json:"totalCapacity"`
	Type               string             `json:"type"`
}

// TourStatusChange defines model for TourStatusChange.
type TourStatusChange struct {
	Status string `json:"status"`
}

// TourStatusChangeResult defines model for TourStatusChangeResult.
type TourStatusChangeResult struct {
	CascadedBookings int64 `json:"cascadedBookings"`
	Tour             Tour  `json:"tour"`
}

// SpecialItem defines model for SpecialItem.
type SpecialItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NewBooking defines model for NewBooking.
type NewBooking struct {
	ContentTypes    *[]string      `json:"contentTypes,omitempty"`
	DeliveryAddress string         `json:"deliveryAddress"`
	DeliveryCity    string         `json:"deliveryCity"`
	PickupCity      string         `json:"pickupCity"`
	RecipientName   string         `json:"recipientName"`
	RecipientPhone  string         `json:"recipientPhone"`
	SpecialItems    *[]SpecialItem `json:"specialItems,omitempty"`
	Weight          int            `json:"weight"`
}

// BookingPatch defines model for BookingPatch.
type BookingPatch struct {
	ContentTypes    *[]string      `json:"contentTypes,omitempty"`
	DeliveryAddress string         `json:"deliveryAddress"`
	DeliveryCity    string         `json:"deliveryCity"`
	RecipientName   string         `json:"recipientName"`
	RecipientPhone  string         `json:"recipientPhone"`
	SpecialItems    *[]SpecialItem `json:"specialItems,omitempty"`
	Weight          *int           `json:"weight,omitempty"`
}

// Booking defines model for Booking.
type Booking struct {
	ClientId        openapi_types.UUID `json:"clientId"`
	ContentTypes    []string           `json:"contentTypes"`
	CreatedAt       time.Time          `json:"createdAt"`
	DeliveryAddress string             `json:"deliveryAddress"`
	DeliveryCity    string             `json:"deliveryCity"`
	Id              openapi_types.UUID `json:"id"`
	PickupCity      string             `json:"pickupCity"`
	RecipientName   string             `json:"recipientName"`
	RecipientPhone  string             `json:"recipientPhone"`
	SpecialItems    []SpecialItem      `json:"specialItems"`
	Status          string             `json:"status"`
	StatusColor     string             `json:"statusColor"`
	StatusLabel     string             `json:"statusLabel"`
	TourId          int64              `json:"tourId"`
	TrackingNumber  string             `json:"trackingNumber"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Weight          int                `json:"weight"`
}

// BookingRow defines model for BookingRow.
type BookingRow struct {
	ClientId       openapi_types.UUID `json:"clientId"`
	CreatedAt      time.Time          `json:"createdAt"`
	DeliveryCity   string             `json:"deliveryCity"`
	Id             openapi_types.UUID `json:"id"`
	PickupCity     string             `json:"pickupCity"`
	RecipientName  string             `json:"recipientName"`
	Status         string             `json:"status"`
	StatusColor    string             `json:"statusColor"`
	StatusLabel    string             `json:"statusLabel"`
	TrackingNumber string             `json:"trackingNumber"`
	Weight         int                `json:"weight"`
}

// BookingStatusChange defines model for BookingStatusChange.
type BookingStatusChange struct {
	Status string `json:"status"`
}

// NewApprovalRequest defines model for NewApprovalRequest.
type NewApprovalRequest struct {
	Message *string `json:"message,omitempty"`
}

// ApprovalDecision defines model for ApprovalDecision.
type ApprovalDecision struct {
	Decision string `json:"decision"`
}

// ApprovalRequest defines model for ApprovalRequest.
type ApprovalRequest struct {
	ClientId  openapi_types.UUID `json:"clientId"`
	CreatedAt time.Time          `json:"createdAt"`
	DecidedAt *time.Time         `json:"decidedAt,omitempty"`
	Id        openapi_types.UUID `json:"id"`
	Message   string             `json:"message"`
	Status    string             `json:"status"`
	TourId    int64              `json:"tourId"`
}

// ListTourBookingsParams defines parameters for ListTourBookings.
type ListTourBookingsParams struct {
	City   *string `form:"city,omitempty" json:"city,omitempty"`
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Sort   *string `form:"sort,omitempty" json:"sort,omitempty"`
	Order  *string `form:"order,omitempty" json:"order,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Publish a tour
	// (POST /tours)
	CreateTour(ctx echo.Context) error
	// Tour with booking counts per status
	// (GET /tours/{id})
	GetTour(ctx echo.Context, id int64) error
	// Change the route or the total capacity
	// (PATCH /tours/{id})
	EditTour(ctx echo.Context, id int64) error
	// Move the tour through its lifecycle and cascade to bookings
	// (PUT /tours/{id}/status)
	ChangeTourStatus(ctx echo.Context, id int64) error
	// Bookings of a tour
	// (GET /tours/{id}/bookings)
	ListTourBookings(ctx echo.Context, id int64, params ListTourBookingsParams) error
	// Book a parcel on the tour
	// (POST /tours/{id}/bookings)
	CreateBooking(ctx echo.Context, id int64) error
	// Ask the carrier for access to a private tour
	// (POST /tours/{id}/approval-requests)
	RequestApproval(ctx echo.Context, id int64) error
	// Approve or reject a request
	// (PUT /approval-requests/{id})
	DecideApproval(ctx echo.Context, id openapi_types.UUID) error
	// Edit a pending booking
	// (PATCH /bookings/{id})
	EditBooking(ctx echo.Context, id openapi_types.UUID) error
	// Apply a direct booking transition
	// (PUT /bookings/{id}/status)
	ChangeBookingStatus(ctx echo.Context, id openapi_types.UUID) error
	// Cancel a pending booking and release its weight
	// (POST /bookings/{id}/cancel)
	CancelBooking(ctx echo.Context, id openapi_types.UUID) error
	// Put a cancelled booking back to pending
	// (POST /bookings/{id}/reinstate)
	ReinstateBooking(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindTourID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindResourceID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// CreateTour converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTour(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateTour(ctx)
}

// GetTour converts echo context to params.
func (w *ServerInterfaceWrapper) GetTour(ctx echo.Context) error {
	id, err := bindTourID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.GetTour(ctx, id)
}

// EditTour converts echo context to params.
func (w *ServerInterfaceWrapper) EditTour(ctx echo.Context) error {
	id, err := bindTourID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.EditTour(ctx, id)
}

// ChangeTourStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeTourStatus(ctx echo.Context) error {
	id, err := bindTourID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ChangeTourStatus(ctx, id)
}

// ListTourBookings converts echo context to params.
func (w *ServerInterfaceWrapper) ListTourBookings(ctx echo.Context) error {
	id, err := bindTourID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	var params ListTourBookingsParams
	for name, dest := range map[string]**string{
		"city":   &params.City,
		"status": &params.Status,
		"sort":   &params.Sort,
		"order":  &params.Order,
	} {
		if err = runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
		}
	}

	return w.Handler.ListTourBookings(ctx, id, params)
}

// CreateBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CreateBooking(ctx echo.Context) error {
	id, err := bindTourID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CreateBooking(ctx, id)
}

// RequestApproval converts echo context to params.
func (w *ServerInterfaceWrapper) RequestApproval(ctx echo.Context) error {
	id, err := bindTourID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.RequestApproval(ctx, id)
}

// DecideApproval converts echo context to params.
func (w *ServerInterfaceWrapper) DecideApproval(ctx echo.Context) error {
	id, err := bindResourceID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.DecideApproval(ctx, id)
}

// EditBooking converts echo context to params.
func (w *ServerInterfaceWrapper) EditBooking(ctx echo.Context) error {
	id, err := bindResourceID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.EditBooking(ctx, id)
}

// ChangeBookingStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeBookingStatus(ctx echo.Context) error {
	id, err := bindResourceID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ChangeBookingStatus(ctx, id)
}

// CancelBooking converts echo context to params.
func (w *ServerInterfaceWrapper) CancelBooking(ctx echo.Context) error {
	id, err := bindResourceID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.CancelBooking(ctx, id)
}

// ReinstateBooking converts echo context to params.
func (w *ServerInterfaceWrapper) ReinstateBooking(ctx echo.Context) error {
	id, err := bindResourceID(ctx)
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})
	return w.Handler.ReinstateBooking(ctx, id)
}

// EchoRouter is implemented by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/tours", wrapper.CreateTour)
	router.GET(baseURL+"/tours/:id", wrapper.GetTour)
	router.PATCH(baseURL+"/tours/:id", wrapper.EditTour)
	router.PUT(baseURL+"/tours/:id/status", wrapper.ChangeTourStatus)
	router.GET(baseURL+"/tours/:id/bookings", wrapper.ListTourBookings)
	router.POST(baseURL+"/tours/:id/bookings", wrapper.CreateBooking)
	router.POST(baseURL+"/tours/:id/approval-requests", wrapper.RequestApproval)
	router.PUT(baseURL+"/approval-requests/:id", wrapper.DecideApproval)
	router.PATCH(baseURL+"/bookings/:id", wrapper.EditBooking)
	router.PUT(baseURL+"/bookings/:id/status", wrapper.ChangeBookingStatus)
	router.POST(baseURL+"/bookings/:id/cancel", wrapper.CancelBooking)
	router.POST(baseURL+"/bookings/:id/reinstate", wrapper.ReinstateBooking)
}

//go:embed openapi.yaml
var rawSpec []byte

// Spec returns the raw OpenAPI document.
func Spec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed OpenAPI document embedded in this package.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading embedded spec: %w", err)
	}
	return swagger, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterSwaggerDoc publishes the document as JSON under swag's default
// instance name, which echo-swagger serves as doc.json.
func RegisterSwaggerDoc() error {
	registerOnce.Do(func() {
		swagger, err := GetSwagger()
		if err != nil {
			registerErr = err
			return
		}
		raw, err := swagger.MarshalJSON()
		if err != nil {
			registerErr = fmt.Errorf("error encoding embedded spec: %w", err)
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return registerErr
}
