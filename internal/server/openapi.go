package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/nostos/internal/disclosure"
	"github.com/playperu/nostos/internal/nostos"
	"github.com/playperu/nostos/internal/screen"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Nostos API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Map roster, selection and QR disclosure for Nostos.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/map
	getMap, _ := r.NewOperationContext(http.MethodGet, "/api/map")
	getMap.SetSummary("Map settings")
	getMap.SetDescription("Initial center, zoom and maps API key.")
	getMap.AddRespStructure(MapConfig{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getMap)

	// GET /api/people
	listPeople, _ := r.NewOperationContext(http.MethodGet, "/api/people")
	listPeople.SetSummary("List markers")
	listPeople.SetDescription("One marker per person, in roster order.")
	listPeople.AddRespStructure([]nostos.Marker{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listPeople)

	// GET /api/people/{id}
	getPerson, _ := r.NewOperationContext(http.MethodGet, "/api/people/{id}")
	getPerson.SetSummary("Get marker")
	getPerson.AddRespStructure(nostos.Marker{}, openapi.WithHTTPStatus(http.StatusOK))
	getPerson.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	getPerson.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getPerson)

	// POST /api/sessions
	createSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	createSession.SetSummary("Create session")
	createSession.SetDescription("Starts a screen on the home section with nothing selected.")
	createSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	_ = r.AddOperation(createSession)

	// GET /api/sessions/{sessionID}
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}")
	getSession.SetSummary("Current view")
	getSession.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSession)

	// PUT /api/sessions/{sessionID}/selection
	putSelection, _ := r.NewOperationContext(http.MethodPut, "/api/sessions/{sessionID}/selection")
	putSelection.SetSummary("Select person")
	putSelection.SetDescription("Marker click. Replaces any current selection.")
	putSelection.AddReqStructure(SelectRequest{})
	putSelection.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	putSelection.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putSelection.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putSelection)

	// DELETE /api/sessions/{sessionID}/selection
	deleteSelection, _ := r.NewOperationContext(http.MethodDelete, "/api/sessions/{sessionID}/selection")
	deleteSelection.SetSummary("Close disclosure")
	deleteSelection.SetDescription("Clears the selection. Idempotent.")
	deleteSelection.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	deleteSelection.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteSelection)

	// GET /api/sessions/{sessionID}/selection/payload
	getPayload, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/selection/payload")
	getPayload.SetSummary("Disclosure payload")
	getPayload.SetDescription("The canonical bytes encoded into the QR code.")
	getPayload.AddRespStructure(disclosure.Payload{}, openapi.WithHTTPStatus(http.StatusOK))
	getPayload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getPayload)

	// GET /api/sessions/{sessionID}/selection/qr.png
	getQR, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/selection/qr.png")
	getQR.SetSummary("Disclosure QR code")
	getQR.SetDescription("PNG QR code of the payload at high error correction. Optional size query parameter.")
	getQR.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK), openapi.WithContentType("image/png"))
	getQR.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	getQR.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getQR)

	// PUT /api/sessions/{sessionID}/section
	putSection, _ := r.NewOperationContext(http.MethodPut, "/api/sessions/{sessionID}/section")
	putSection.SetSummary("Navigate")
	putSection.SetDescription("Switches to home, information, settings or user.")
	putSection.AddReqStructure(SectionRequest{})
	putSection.AddRespStructure(screen.View{}, openapi.WithHTTPStatus(http.StatusOK))
	putSection.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putSection.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(putSection)

	// GET /api/sessions/{sessionID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/events")
	getEvents.SetSummary("SSE view stream")
	getEvents.SetDescription("Server-Sent Events stream of the session view, sent on connect and after every change.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/sessions/{sessionID}/live
	getLive, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{sessionID}/live")
	getLive.SetSummary("WebSocket commands")
	getLive.SetDescription("Upgrades to a WebSocket that accepts select, close and navigate commands and replies with the view.")
	getLive.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getLive)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
