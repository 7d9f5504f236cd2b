package jsonrpc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
	websocketjsonrpc2 "github.com/sourcegraph/jsonrpc2/websocket"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/core"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/config"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"go.uber.org/zap"
)

// Service talks JSON-RPC 2.0 to the scheduler over a websocket. The
// connection is dialed on the first call and dialed again if the
// scheduler dropped it.
type Service struct {
	url    string
	token  string
	dialer *websocket.Dialer

	mu   sync.Mutex
	conn *jsonrpc2.Conn

	log *logger.Logger
}

func New(cfg *config.Config, log *logger.Logger) library.JSONRPC {
	dialer := *websocket.DefaultDialer
	dialer.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}
	return &Service{
		url:    cfg.DeployerURL,
		token:  cfg.CatalogToken,
		dialer: &dialer,
		log:    log,
	}
}

// notificationHandler receives the requests the scheduler pushes on the
// connection. The SDK only logs them.
type notificationHandler struct {
	log *logger.Logger
}

func (h notificationHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	h.log.Debug("Received scheduler notification",
		zap.String("method", req.Method),
		zap.Bool("notif", req.Notif))
	if req.Notif {
		return
	}
	_ = conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
		Code:    jsonrpc2.CodeMethodNotFound,
		Message: fmt.Sprintf("method not supported: %s", req.Method),
	})
}

func (s *Service) connect(ctx context.Context) (*jsonrpc2.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		select {
		case <-s.conn.DisconnectNotify():
			s.log.Warn("Scheduler connection lost, dialing again", zap.String("url", s.url))
			s.conn = nil
		default:
			return s.conn, nil
		}
	}

	if s.url == "" {
		return nil, core.ErrDeployerNotConfigured.WithArgs()
	}

	header := http.Header{}
	if s.token != "" {
		header.Set("Authorization", "Bearer "+s.token)
	}
	ws, _, err := s.dialer.DialContext(ctx, s.url, header)
	if err != nil {
		return nil, core.ErrFailedToDialDeployer.WithArgs(s.url, err)
	}

	s.conn = jsonrpc2.NewConn(context.Background(), websocketjsonrpc2.NewObjectStream(ws), notificationHandler{log: s.log})
	s.log.Debug("Connected to scheduler", zap.String("url", s.url))
	return s.conn, nil
}

func (s *Service) Call(ctx context.Context, method string, params map[string]any, result any, logContext ...zap.Field) error {
	log := s.log.With(logContext...).WithField("method", method)
	log.Debug("Making JSON-RPC call", zap.Any("params", redact(params)))

	conn, err := s.connect(ctx)
	if err != nil {
		log.WithError(err).Error("JSON-RPC call failed")
		return fmt.Errorf("JSON-RPC call to %s failed: %w", method, err)
	}

	if err := conn.Call(ctx, method, params, result); err != nil {
		log.WithError(err).Error("JSON-RPC call failed")
		return fmt.Errorf("JSON-RPC call to %s failed: %w", method, err)
	}

	log.Debug("JSON-RPC call successful", zap.Any("result", result))
	return nil
}

func (s *Service) ValidateResult(result bool, operation string, logContext ...zap.Field) error {
	if !result {
		s.log.With(logContext...).WithField("operation", operation).Warn("Operation returned unsuccessful status")
		return fmt.Errorf("%s returned unsuccessful status", operation)
	}
	return nil
}

func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// redact hides connector credentials from debug logs.
func redact(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	if _, ok := out["connectorConfig"]; ok {
		out["connectorConfig"] = "[redacted]"
	}
	return out
}
