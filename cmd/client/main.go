package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/okarpov/datafreezer/internal/client"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

const usage = `usage: client [-a addr] [-u user] [-k chunksize] <command> [args]

commands:
  login                     verify credentials and print the session token
  list                      list stored files
  upload <path>             upload a file
  download <name> [dir]     download a file (default dir: .)
  delete <name>             delete a file (asks for password)
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("a", "127.0.0.1:50051", "server address")
	user := flag.String("u", "", "username")
	chunkSize := flag.Int64("k", client.DefaultChunkSize, "chunk size (in bytes)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		return fmt.Errorf("%s", usage)
	}

	svc := client.NewBackupClientService(*addr, *chunkSize)
	if err := svc.InitGRPCClient(); err != nil {
		return err
	}
	defer svc.Close()

	ctx := context.Background()

	switch args[0] {

	case "login":
		if err := login(ctx, svc, *user); err != nil {
			return err
		}
		fmt.Println(svc.SessionToken())
		return nil

	case "list":
		names, err := svc.ListFiles(ctx, *user)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil

	case "upload":
		if len(args) < 2 {
			return fmt.Errorf("upload: missing file path")
		}
		fileID, err := svc.UploadFile(ctx, *user, args[1])
		if err != nil {
			return err
		}
		fmt.Println("uploaded, file id:", fileID)
		return nil

	case "download":
		if len(args) < 2 {
			return fmt.Errorf("download: missing file name")
		}
		destDir := "."
		if len(args) > 2 {
			destDir = args[2]
		}
		path, err := svc.DownloadFile(ctx, *user, args[1], destDir)
		if err != nil {
			return err
		}
		fmt.Println("downloaded to", path)
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("delete: missing file name")
		}
		if err := login(ctx, svc, *user); err != nil {
			return err
		}
		if err := svc.DeleteFile(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("deleted", args[1])
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

// login prompts for the password without echo and authenticates.
func login(ctx context.Context, svc *client.BackupClientService, userName string) error {
	if userName == "" {
		return fmt.Errorf("username required (-u)")
	}

	fmt.Print("Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	return svc.Login(ctx, userName, pw)
}
