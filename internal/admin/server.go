package admin

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"manas-planner/internal/planner"
)

// Server exposes a read-only web view of the planner console.
type Server struct {
	Console *planner.Console
	tpl     *template.Template
}

//go:embed templates/index.html
var content embed.FS

func NewServer(console *planner.Console) *Server {
	tpl := template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))
	return &Server{Console: console, tpl: tpl}
}

func (s *Server) routes() {
	http.HandleFunc("/", s.handleIndex)
	http.HandleFunc("/snapshot", s.handleSnapshot)
	http.HandleFunc("/health", s.handleHealth)
}

func (s *Server) Start(addr string) error {
	s.routes()
	return http.ListenAndServe(addr, nil)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.Console.Snapshot()
	data := struct {
		GlobalLive bool
		Drones     []droneView
	}{GlobalLive: snap.GlobalLive}
	for _, id := range planner.Drones() {
		ds := snap.Drones[id]
		data.Drones = append(data.Drones, droneView{
			Card:    ds.Card,
			GPSGate: ds.GPSGate,
			HasFix:  ds.LastSeen != nil,
		})
	}
	s.tpl.Execute(w, data)
}

type droneView struct {
	Card    planner.StatusCard
	GPSGate bool
	HasFix  bool
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Console.Snapshot())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
}
