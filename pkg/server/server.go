package server

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tinytype/bindict/internal/logger"
	"github.com/tinytype/bindict/pkg/bindict"
)

// Server handles msgpack IPC for dictionary queries over stdin/stdout.
type Server struct {
	dict           *bindict.Dictionary
	maxPredictions int
	maxCorrections int
	decoder        *msgpack.Decoder
	encoder        *msgpack.Encoder
	log            *log.Logger
}

// NewServer creates a new dictionary server using stdin/stdout for IPC.
func NewServer(dict *bindict.Dictionary, maxPredictions, maxCorrections int) *Server {
	return &Server{
		dict:           dict,
		maxPredictions: maxPredictions,
		maxCorrections: maxCorrections,
		decoder:        msgpack.NewDecoder(os.Stdin),
		encoder:        msgpack.NewEncoder(os.Stdout),
		log:            logger.New("server"),
	}
}

// Start begins reading msgpack requests from stdin, one value at a time,
// dispatching each to the matching handler and writing its response
// before reading the next request. It returns nil on a clean EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting server.")

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "exists":
		s.handleExists(request)
	case "predict":
		s.handlePredict(request)
	case "correct":
		s.handleCorrect(request)
	default:
		s.sendError(request.ID, "unknown action: "+request.Action)
	}
}

func (s *Server) handleExists(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "missing 'w' parameter")
		return
	}
	s.send(ExistsResponse{ID: request.ID, Exists: s.dict.Exists(request.Word)})
}

func (s *Server) handlePredict(request Request) {
	if len(request.Ctx) == 0 {
		s.sendError(request.ID, "missing 'ctx' parameter")
		return
	}
	limit := request.K
	if limit <= 0 || limit > s.maxPredictions {
		limit = s.maxPredictions
	}

	start := time.Now()
	results := s.dict.Predictions(request.Ctx, limit)
	elapsed := time.Since(start)

	s.send(ResultsResponse{ID: request.ID, Results: toResultWords(results), TimeTaken: elapsed.Microseconds()})
}

func (s *Server) handleCorrect(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "missing 'w' parameter")
		return
	}
	limit := request.K
	if limit <= 0 || limit > s.maxCorrections {
		limit = s.maxCorrections
	}

	start := time.Now()
	results := s.dict.Corrections(request.Word, limit)
	elapsed := time.Since(start)

	s.send(ResultsResponse{ID: request.ID, Results: toResultWords(results), TimeTaken: elapsed.Microseconds()})
}

func toResultWords(results []bindict.WeightedWord) []ResultWord {
	out := make([]ResultWord, len(results))
	for i, r := range results {
		out[i] = ResultWord{Word: r.Word, Weight: r.Weight}
	}
	return out
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string) {
	s.send(ErrorResponse{ID: id, Error: message})
}
