// Package client implements the gRPC client side of the backup service:
// chunked upload and download plus the unary login, list and delete calls.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/okarpov/datafreezer/internal/proto"
)

// DefaultChunkSize must match the server's configured chunk size, since the
// server computes write offsets from it.
const DefaultChunkSize = 1024 * 1024

type BackupClientService struct {
	endpointURL  string
	chunkSize    int64
	conn         *grpc.ClientConn
	client       pb.BackupServiceClient
	sessionToken string
}

func NewBackupClientService(endpointURL string, chunkSize int64) *BackupClientService {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &BackupClientService{endpointURL: endpointURL, chunkSize: chunkSize}
}

func (s *BackupClientService) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewBackupServiceClient(conn)
	return nil
}

func (s *BackupClientService) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// SessionToken returns the token received from the last successful Login.
func (s *BackupClientService) SessionToken() string {
	return s.sessionToken
}

// Login authenticates and stores the session token for later DeleteFile
// calls.
func (s *BackupClientService) Login(ctx context.Context, userName string, password []byte) error {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: userName, Password: string(password)})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("login failed: %s", resp.Message)
	}

	s.sessionToken = resp.SessionToken
	return nil
}

// UploadFile streams filePath to the server in chunks and returns the
// assigned file id. Every frame carries the file name and chunk count; the
// server only reads them from the first one. An empty file is sent as a
// single empty chunk.
func (s *BackupClientService) UploadFile(ctx context.Context, userName string, filePath string) (string, error) {

	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	totalChunks := (info.Size() + s.chunkSize - 1) / s.chunkSize
	if totalChunks == 0 {
		totalChunks = 1
	}

	stream, err := s.client.UploadFile(ctx)
	if err != nil {
		return "", err
	}

	fileName := filepath.Base(filePath)
	buf := make([]byte, s.chunkSize)
	for i := int64(0); i < totalChunks; i++ {
		n, err := io.ReadFull(f, buf)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return "", err
		}

		req := &pb.UploadFileRequest{
			Username:    userName,
			FileName:    fileName,
			ChunkNumber: i,
			TotalChunks: totalChunks,
			Data:        buf[:n],
		}
		if err := stream.Send(req); err != nil {
			return "", err
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("upload failed: %s", resp.Message)
	}

	return resp.FileId, nil
}

// ListFiles returns the names of the user's stored files.
func (s *BackupClientService) ListFiles(ctx context.Context, userName string) ([]string, error) {

	stream, err := s.client.ListFiles(ctx, &pb.ListFilesRequest{Username: userName})
	if err != nil {
		return nil, err
	}

	var names []string
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, resp.FileName)
	}
	return names, nil
}

// DownloadFile streams fileName from the server into destDir and returns the
// written path. A partially written file is removed on failure.
func (s *BackupClientService) DownloadFile(ctx context.Context, userName string, fileName string, destDir string) (string, error) {

	stream, err := s.client.DownloadFile(ctx, &pb.DownloadFileRequest{Username: userName, FileName: fileName})
	if err != nil {
		return "", err
	}

	destPath := filepath.Join(destDir, filepath.Base(fileName))
	f, err := os.Create(destPath)
	if err != nil {
		return "", err
	}

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			f.Close()
			os.Remove(destPath)
			return "", err
		}
		if _, err := f.Write(resp.Data); err != nil {
			f.Close()
			os.Remove(destPath)
			return "", err
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(destPath)
		return "", err
	}
	return destPath, nil
}

// DeleteFile removes fileName on the server using the stored session token,
// so Login must succeed first.
func (s *BackupClientService) DeleteFile(ctx context.Context, fileName string) error {

	resp, err := s.client.DeleteFile(ctx, &pb.DeleteFileRequest{SessionToken: s.sessionToken, FileName: fileName})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("delete failed: %s", resp.Message)
	}
	return nil
}
