package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"stellardrift.space/sim"
)

// Server runs the simulation loop and serves world state over HTTP and
// websocket.
type Server struct {
	httpServer *http.Server
	metrics    *MetricsCollector
	limiter    *IPRateLimiter
	world      *sim.World
	tick       time.Duration
	timescale  float64
	done       chan struct{}
	wg         sync.WaitGroup
}

func NewServer(world *sim.World, tick time.Duration, timescale float64) *Server {
	return &Server{
		metrics:   NewMetricsCollector(),
		limiter:   NewIPRateLimiter(requestsPerSecond, requestBurst),
		world:     world,
		tick:      tick,
		timescale: timescale,
		done:      make(chan struct{}),
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/bodies", s.handleBodies)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", s.metrics.Handler())
	return mux
}

// allow applies the per-IP rate limit to a request.
func (s *Server) allow(r *http.Request) bool {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return s.limiter.Allow(ip)
}

func (s *Server) handleBodies(w http.ResponseWriter, r *http.Request) {
	if !s.allow(r) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}
	s.metrics.RecordRequest("bodies")
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.world.Catalog()); err != nil {
		log.Printf("encoding bodies response: %v", err)
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if !s.allow(r) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}
	s.metrics.RecordRequest("state")
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.world.Snapshot()); err != nil {
		log.Printf("encoding state response: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// runSimulation advances the world on the wall-clock tick until shutdown.
// Each tick moves the simulation clock by tick * timescale seconds.
func (s *Server) runSimulation() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			start := time.Now()
			s.world.Tick(s.tick.Seconds() * s.timescale)
			s.metrics.ObserveTick(time.Since(start))
		}
	}
}

func (s *Server) Start(addr string, useTLS bool, domain string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // websocket writes manage their own deadlines
	}

	s.wg.Add(1)
	go s.runSimulation()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		var err error
		if useTLS {
			s.httpServer.TLSConfig = setupTLS(domain)
			err = s.httpServer.ListenAndServeTLS("", "")
		} else {
			err = s.httpServer.ListenAndServe()
		}
		if err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	log.Printf("Simulation server listening on %s (timescale %.0fx)", addr, s.timescale)
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	close(s.done)
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	s.wg.Wait()
	return nil
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	tick := flag.Duration("tick", 50*time.Millisecond, "simulation tick interval")
	timescale := flag.Float64("timescale", 60, "simulated seconds per wall-clock second")
	useTLS := flag.Bool("tls", false, "serve TLS with autocert certificates")
	domain := flag.String("domain", "stellardrift.space", "domain for TLS certificates")
	flag.Parse()

	world := sim.NewWorld(sim.DefaultCatalog(), sim.DefaultFreeBodies())
	server := NewServer(world, *tick, *timescale)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := server.Start(*addr, *useTLS, *domain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	<-signals
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server shutdown complete")
}
