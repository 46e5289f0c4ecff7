// Package grpc exposes the backup service over gRPC: Login, UploadFile,
// ListFiles, DownloadFile and DeleteFile. Handlers stay thin; they translate
// between protobuf messages and the service layer and map sentinel errors to
// status codes.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/okarpov/datafreezer/internal/logging"
	pb "github.com/okarpov/datafreezer/internal/proto"
	"github.com/okarpov/datafreezer/internal/server/models"
	"github.com/okarpov/datafreezer/internal/server/services"
)

type authSvc interface {
	Login(ctx context.Context, userName string, password string) (*services.Session, error)
	ValidateToken(ctx context.Context, token string) (string, error)
}

type fileSvc interface {
	List(ctx context.Context, userName string) ([]string, error)
	Download(ctx context.Context, userName string, fileName string, send func(chunkNumber, totalChunks int64, data []byte) error) error
	Delete(ctx context.Context, userName string, fileName string) error
}

// uploadTransfer is the per-stream upload state machine driven by the
// UploadFile handler.
type uploadTransfer interface {
	Ingest(frame *services.Chunk) (bool, error)
	Complete(ctx context.Context) (*models.FileRecord, error)
	Abort(ctx context.Context)
	FileName() string
}

type GRPCServer struct {
	pb.UnimplementedBackupServiceServer
	address     string
	auth        authSvc
	files       fileSvc
	newTransfer func() uploadTransfer
	logger      logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as *services.AuthService, fs *services.FileService) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		auth:        as,
		files:       fs,
		newTransfer: func() uploadTransfer { return fs.NewTransfer() },
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingUnaryInterceptor),
		grpc.ChainStreamInterceptor(s.loggingStreamInterceptor),
	)

	// registers service
	pb.RegisterBackupServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
