// Package http is the inbound echo surface of the storefront. Handlers
// translate between the wire and the application's commands and queries;
// every route except the health check runs behind the bearer middleware.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"agrimarket/internal/core/application/cartsync"
	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/application/usecases/queries"
	"agrimarket/internal/core/domain/model/address"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"
	"agrimarket/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	auth  *Authenticator
	carts *cartsync.Registry

	// Command handlers
	saveAddressHandler        commands.SaveAddressCommandHandler
	deleteAddressHandler      commands.DeleteAddressCommandHandler
	setDefaultAddressHandler  commands.SetDefaultAddressCommandHandler
	placeCodOrderHandler      commands.PlaceCodOrderCommandHandler
	beginGatewayHandler       commands.BeginGatewayCheckoutCommandHandler
	completeGatewayHandler    commands.CompleteGatewayCheckoutCommandHandler
	abortGatewayHandler       commands.AbortGatewayCheckoutCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	requestReturnHandler      commands.RequestReturnCommandHandler
	requestReplacementHandler commands.RequestReplacementCommandHandler

	// Query handlers
	resolvePincodeHandler  queries.ResolvePincodeQueryHandler
	getCartHandler         queries.GetCartQueryHandler
	getAddressesHandler    queries.GetAddressesQueryHandler
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	downloadInvoiceHandler queries.DownloadInvoiceQueryHandler
}

// NewServer creates the HTTP server over the authenticator, the synchronizer
// registry and the full set of command and query handlers.
func NewServer(
	auth *Authenticator,
	carts *cartsync.Registry,
	saveAddressHandler commands.SaveAddressCommandHandler,
	deleteAddressHandler commands.DeleteAddressCommandHandler,
	setDefaultAddressHandler commands.SetDefaultAddressCommandHandler,
	placeCodOrderHandler commands.PlaceCodOrderCommandHandler,
	beginGatewayHandler commands.BeginGatewayCheckoutCommandHandler,
	completeGatewayHandler commands.CompleteGatewayCheckoutCommandHandler,
	abortGatewayHandler commands.AbortGatewayCheckoutCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	requestReturnHandler commands.RequestReturnCommandHandler,
	requestReplacementHandler commands.RequestReplacementCommandHandler,
	resolvePincodeHandler queries.ResolvePincodeQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getAddressesHandler queries.GetAddressesQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	downloadInvoiceHandler queries.DownloadInvoiceQueryHandler,
) *Server {
	return &Server{
		auth:                      auth,
		carts:                     carts,
		saveAddressHandler:        saveAddressHandler,
		deleteAddressHandler:      deleteAddressHandler,
		setDefaultAddressHandler:  setDefaultAddressHandler,
		placeCodOrderHandler:      placeCodOrderHandler,
		beginGatewayHandler:       beginGatewayHandler,
		completeGatewayHandler:    completeGatewayHandler,
		abortGatewayHandler:       abortGatewayHandler,
		cancelOrderHandler:        cancelOrderHandler,
		requestReturnHandler:      requestReturnHandler,
		requestReplacementHandler: requestReplacementHandler,
		resolvePincodeHandler:     resolvePincodeHandler,
		getCartHandler:            getCartHandler,
		getAddressesHandler:       getAddressesHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		downloadInvoiceHandler:    downloadInvoiceHandler,
	}
}

// RegisterRoutes mounts every route on e. The health check stays outside the
// authenticated group.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.auth.Middleware())

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:productId", s.SetCartItemQuantity)
	api.DELETE("/cart/items/:productId", s.RemoveCartItem)

	api.GET("/addresses", s.GetAddresses)
	api.POST("/addresses", s.SaveAddress)
	api.DELETE("/addresses/:id", s.DeleteAddress)
	api.PUT("/addresses/:id/default", s.SetDefaultAddress)

	api.GET("/pincode/:code", s.ResolvePincode)

	api.POST("/checkout/cod", s.PlaceCodOrder)
	api.POST("/checkout/gateway", s.BeginGatewayCheckout)
	api.POST("/checkout/gateway/verify", s.CompleteGatewayCheckout)
	api.DELETE("/checkout/gateway/:gatewayOrderId", s.AbortGatewayCheckout)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/return", s.RequestReturn)
	api.POST("/orders/:id/replace", s.RequestReplacement)
	api.GET("/orders/:id/invoice", s.DownloadInvoice)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetCart handles GET /api/v1/cart. The view carries optimistic totals:
// locally applied quantities count even while their writes are still pending.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(sessionFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	view, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartResponseFromView(view))
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req addItemRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if req.ProductID == "" {
		return s.respondError(ctx, errs.NewValueIsRequiredError("productId"))
	}

	sync := s.carts.ForSession(sessionFrom(ctx))
	if err := sync.AddItem(ctx.Request().Context(), req.ProductID, req.Quantity); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, cartResponseFromView(sync.Snapshot()))
}

// SetCartItemQuantity handles PATCH /api/v1/cart/items/:productId. The edit
// applies locally at once and is written upstream after the debounce window;
// the response reflects the clamped local state, not the upstream write.
func (s *Server) SetCartItemQuantity(ctx echo.Context) error {
	var req setQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	sync := s.carts.ForSession(sessionFrom(ctx))
	if sync.Cart() == nil {
		if err := sync.Refresh(ctx.Request().Context()); err != nil {
			return s.respondError(ctx, err)
		}
	}

	var err error
	if req.Quantity <= 0 {
		_, err = sync.ResolveEmpty(ctx.Param("productId"))
	} else {
		_, err = sync.SetQuantity(ctx.Param("productId"), req.Quantity)
	}
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartResponseFromView(sync.Snapshot()))
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:productId. Removal is
// written upstream immediately, not debounced.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	sync := s.carts.ForSession(sessionFrom(ctx))
	if err := sync.RemoveItem(ctx.Request().Context(), ctx.Param("productId")); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartResponseFromView(sync.Snapshot()))
}

// GetAddresses handles GET /api/v1/addresses.
func (s *Server) GetAddresses(ctx echo.Context) error {
	query, err := queries.NewGetAddressesQuery(sessionFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	addrs, err := s.getAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]addressResponse, len(addrs))
	for i, addr := range addrs {
		response[i] = addressResponseFromDomain(addr)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SaveAddress handles POST /api/v1/addresses. District and state never come
// from the request: the pincode is resolved here, and a code the postal
// service does not know makes the address unsaveable.
func (s *Server) SaveAddress(ctx echo.Context) error {
	var req saveAddressRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	resolveQuery, err := queries.NewResolvePincodeQuery(req.Pincode)
	if err != nil {
		return s.respondError(ctx, err)
	}

	locality, err := s.resolvePincodeHandler.Handle(ctx.Request().Context(), resolveQuery)
	if err != nil {
		return s.respondError(ctx, err)
	}

	pin, err := address.NewPincode(req.Pincode)
	if err != nil {
		return s.respondError(ctx, err)
	}

	addr, err := address.NewAddress(req.ID, req.Label, req.Street, pin, locality.District, locality.State, req.IsDefault)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewSaveAddressCommand(sessionFrom(ctx), addr)
	if err != nil {
		return s.respondError(ctx, err)
	}

	saved, err := s.saveAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	status := http.StatusCreated
	if addr.IsSaved() {
		status = http.StatusOK
	}
	return ctx.JSON(status, addressResponseFromDomain(saved))
}

// DeleteAddress handles DELETE /api/v1/addresses/:id.
func (s *Server) DeleteAddress(ctx echo.Context) error {
	cmd, err := commands.NewDeleteAddressCommand(sessionFrom(ctx), ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.deleteAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetDefaultAddress handles PUT /api/v1/addresses/:id/default.
func (s *Server) SetDefaultAddress(ctx echo.Context) error {
	cmd, err := commands.NewSetDefaultAddressCommand(sessionFrom(ctx), ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.setDefaultAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ResolvePincode handles GET /api/v1/pincode/:code.
func (s *Server) ResolvePincode(ctx echo.Context) error {
	query, err := queries.NewResolvePincodeQuery(ctx.Param("code"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	locality, err := s.resolvePincodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, localityResponse{
		Pincode:  query.Pincode().String(),
		District: locality.District,
		State:    locality.State,
	})
}

// PlaceCodOrder handles POST /api/v1/checkout/cod.
func (s *Server) PlaceCodOrder(ctx echo.Context) error {
	sess := sessionFrom(ctx)

	req, deliveryTo, err := s.bindCheckout(ctx, sess)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewPlaceCodOrderCommand(sess, deliveryTo, req.Notes)
	if err != nil {
		return s.respondError(ctx, err)
	}

	placed, err := s.placeCodOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(placed))
}

// BeginGatewayCheckout handles POST /api/v1/checkout/gateway. The returned
// intent feeds the payment widget; no order exists until verification.
func (s *Server) BeginGatewayCheckout(ctx echo.Context) error {
	sess := sessionFrom(ctx)

	req, deliveryTo, err := s.bindCheckout(ctx, sess)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewBeginGatewayCheckoutCommand(sess, deliveryTo, req.Notes)
	if err != nil {
		return s.respondError(ctx, err)
	}

	intent, err := s.beginGatewayHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentIntentResponseFromPort(intent))
}

// CompleteGatewayCheckout handles POST /api/v1/checkout/gateway/verify.
func (s *Server) CompleteGatewayCheckout(ctx echo.Context) error {
	var req verifyPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCompleteGatewayCheckoutCommand(sessionFrom(ctx), ports.GatewayConfirmation{
		GatewayOrderID: req.GatewayOrderID,
		PaymentID:      req.PaymentID,
		Signature:      req.Signature,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	placed, err := s.completeGatewayHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(placed))
}

// AbortGatewayCheckout handles DELETE /api/v1/checkout/gateway/:gatewayOrderId.
// Aborting an unknown or expired checkout succeeds; dismissing the widget
// twice is not an error.
func (s *Server) AbortGatewayCheckout(ctx echo.Context) error {
	cmd, err := commands.NewAbortGatewayCheckoutCommand(sessionFrom(ctx), ctx.Param("gatewayOrderId"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.abortGatewayHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(sessionFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]orderResponse, len(orders))
	for i, current := range orders {
		response[i] = orderResponseFromDomain(current)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id. The response includes which
// lifecycle actions are currently allowed, so the client never guesses.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(sessionFrom(ctx), ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailResponseFromQuery(detail))
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	reason, err := s.bindReason(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(sessionFrom(ctx), ctx.Param("id"), reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RequestReturn handles POST /api/v1/orders/:id/return.
func (s *Server) RequestReturn(ctx echo.Context) error {
	reason, err := s.bindReason(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRequestReturnCommand(sessionFrom(ctx), ctx.Param("id"), reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.requestReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusAccepted)
}

// RequestReplacement handles POST /api/v1/orders/:id/replace.
func (s *Server) RequestReplacement(ctx echo.Context) error {
	reason, err := s.bindReason(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRequestReplacementCommand(sessionFrom(ctx), ctx.Param("id"), reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.requestReplacementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusAccepted)
}

// DownloadInvoice handles GET /api/v1/orders/:id/invoice, streaming the PDF.
func (s *Server) DownloadInvoice(ctx echo.Context) error {
	query, err := queries.NewDownloadInvoiceQuery(sessionFrom(ctx), ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	invoice, err := s.downloadInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	defer invoice.Content.Close()

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", invoice.Filename))
	return ctx.Stream(http.StatusOK, invoice.ContentType, invoice.Content)
}

// bindCheckout binds a checkout request and resolves its address id against
// the buyer's address book.
func (s *Server) bindCheckout(ctx echo.Context, sess ports.Session) (checkoutRequest, address.Address, error) {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return req, address.Address{}, errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if req.AddressID == "" {
		return req, address.Address{}, errs.NewValueIsRequiredError("addressId")
	}

	query, err := queries.NewGetAddressesQuery(sess)
	if err != nil {
		return req, address.Address{}, err
	}

	addrs, err := s.getAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return req, address.Address{}, err
	}

	for _, addr := range addrs {
		if addr.ID() == req.AddressID {
			return req, addr, nil
		}
	}
	return req, address.Address{}, errs.NewObjectNotFoundError("address", req.AddressID)
}

func (s *Server) bindReason(ctx echo.Context) (order.Reason, error) {
	var req lifecycleActionRequest
	if err := ctx.Bind(&req); err != nil {
		return order.Reason{}, errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return order.NewReason(order.ReasonCode(req.ReasonCode), req.ReasonText)
}

// respondError maps the error taxonomy onto HTTP statuses. Authentication
// outranks everything else; payment failures carry the contact-support flag
// so the client can show the right recovery path.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var paymentErr *errs.PaymentFailedError

	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		return ctx.JSON(http.StatusUnauthorized, errorResponse{
			Code:         http.StatusUnauthorized,
			Message:      err.Error(),
			AuthRequired: true,
		})
	case errors.As(err, &paymentErr):
		return ctx.JSON(http.StatusPaymentRequired, errorResponse{
			Code:           http.StatusPaymentRequired,
			Message:        err.Error(),
			ContactSupport: paymentErr.ContactSupport,
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrNotAvailable):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrNetworkFailure):
		return ctx.JSON(http.StatusBadGateway, errorResponse{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
