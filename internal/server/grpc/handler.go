package grpc

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/okarpov/datafreezer/internal/common"
	pb "github.com/okarpov/datafreezer/internal/proto"
	"github.com/okarpov/datafreezer/internal/server/services"
)

// Login verifies credentials and returns a session token. Bad credentials
// come back as a structured {success:false} response rather than a status
// error, so clients can distinguish them from transport failures.
func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	session, err := s.auth.Login(ctx, req.Username, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return &pb.LoginResponse{Success: false, Message: "invalid credentials"}, nil
		}
		s.logger.Error(ctx, "login failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "login", "username", req.Username)
	return &pb.LoginResponse{Success: true, SessionToken: session.Token, Message: "login successful"}, nil
}

// UploadFile receives one file as a stream of chunks. The transfer is
// aborted, partial file included, on any stream or ingest failure; the
// deferred Abort is a no-op once the upload has completed.
func (s *GRPCServer) UploadFile(stream pb.BackupService_UploadFileServer) error {
	ctx := stream.Context()

	tr := s.newTransfer()
	defer tr.Abort(ctx)

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			// The client closed before the declared chunk count arrived.
			return status.Error(codes.InvalidArgument, "upload incomplete")
		}
		if err != nil {
			return err
		}

		done, err := tr.Ingest(&services.Chunk{
			UserName:    req.Username,
			FileName:    req.FileName,
			ChunkNumber: req.ChunkNumber,
			TotalChunks: req.TotalChunks,
			Data:        req.Data,
		})
		if err != nil {
			return s.uploadError(ctx, err)
		}
		if !done {
			continue
		}

		record, err := tr.Complete(ctx)
		if err != nil {
			return s.uploadError(ctx, err)
		}

		s.logger.Info(ctx, "upload completed", "file", record.FileName, "size", record.FileSize)
		return stream.SendAndClose(&pb.UploadFileResponse{
			Success: true,
			FileId:  record.ID,
			Message: "upload successful: " + record.FileName,
		})
	}
}

func (s *GRPCServer) uploadError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrProtocol):
		return status.Error(codes.InvalidArgument, "malformed chunk stream")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "unknown user")
	default:
		s.logger.Error(ctx, "upload failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

// ListFiles streams the names of the user's stored files. An unknown user is
// an explicit NotFound, never a silently empty stream.
func (s *GRPCServer) ListFiles(req *pb.ListFilesRequest, stream pb.BackupService_ListFilesServer) error {

	names, err := s.files.List(stream.Context(), req.Username)

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return status.Error(codes.NotFound, "unknown user")
		}
		return status.Error(codes.Internal, "internal error")
	}

	for _, name := range names {
		if err := stream.Send(&pb.ListFilesResponse{FileName: name}); err != nil {
			return err
		}
	}
	return nil
}

// DownloadFile streams one file back in chunks. If the stored bytes do not
// match the recorded size the stream fails with DataLoss before the first
// frame.
func (s *GRPCServer) DownloadFile(req *pb.DownloadFileRequest, stream pb.BackupService_DownloadFileServer) error {
	ctx := stream.Context()

	err := s.files.Download(ctx, req.Username, req.FileName, func(chunkNumber, totalChunks int64, data []byte) error {
		return stream.Send(&pb.DownloadFileResponse{
			ChunkNumber: chunkNumber,
			TotalChunks: totalChunks,
			Data:        data,
		})
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "file not found")
	case errors.Is(err, common.ErrIntegrity):
		return status.Error(codes.DataLoss, "stored file does not match recorded size")
	default:
		if _, ok := status.FromError(err); ok {
			// A Send failure is already a status; pass it through.
			return err
		}
		s.logger.Error(ctx, "download failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

// DeleteFile removes a stored file. The operation is gated on a valid,
// unexpired session token; validation failures come back as structured
// {success:false} responses.
func (s *GRPCServer) DeleteFile(ctx context.Context, req *pb.DeleteFileRequest) (*pb.DeleteFileResponse, error) {

	userName, err := s.auth.ValidateToken(ctx, req.SessionToken)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTokenExpired):
			return &pb.DeleteFileResponse{Success: false, Message: "session token expired"}, nil
		case errors.Is(err, common.ErrInvalidToken):
			return &pb.DeleteFileResponse{Success: false, Message: "invalid session token"}, nil
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	if err := s.files.Delete(ctx, userName, req.FileName); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &pb.DeleteFileResponse{Success: false, Message: "file not found"}, nil
		}
		s.logger.Error(ctx, "delete failed", "file", req.FileName, "error", err)
		return &pb.DeleteFileResponse{Success: false, Message: "failed to delete file"}, nil
	}

	s.logger.Info(ctx, "file deleted", "username", userName, "file", req.FileName)
	return &pb.DeleteFileResponse{Success: true, Message: "file deleted: " + req.FileName}, nil
}
