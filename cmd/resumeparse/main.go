// Command resumeparse extracts structured fields from one resume file and
// prints them as JSON.
//
//	resumeparse [flags] <resume.pdf|resume.docx|resume.txt>
//
// Exit codes: 0 success, 1 extraction or output failure, 2 usage or
// configuration error, 3 unsupported file type.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/artem13815/resumefill/pkg/config"
	"github.com/artem13815/resumefill/pkg/llm/provider"
	"github.com/artem13815/resumefill/pkg/logging"
	"github.com/artem13815/resumefill/pkg/resume"
)

const (
	exitOK          = 0
	exitFailed      = 1
	exitUsage       = 2
	exitUnsupported = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cli, err := config.LoadCLI(filepath.Base(os.Args[0]), args, stderr)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, err := logging.New(cli.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mediaType := cli.MediaType
	if mediaType == "" {
		mediaType = resume.MediaTypeFromFilename(cli.File)
	}
	ingestor := resume.NewIngestor(cli.MaxUploadBytes)
	if err := ingestor.Accept(mediaType); err != nil {
		fmt.Fprintln(stderr, resume.UserMessage(err))
		return exitUnsupported
	}

	f, err := os.Open(cli.File)
	if err != nil {
		logger.Debug("open input", zap.Error(err))
		fmt.Fprintln(stderr, resume.MsgReadFailed)
		return exitFailed
	}
	defer f.Close()

	upload := resume.Upload{Filename: filepath.Base(cli.File), MediaType: mediaType, Reader: f}
	if st, err := f.Stat(); err == nil {
		upload.Size = st.Size()
	}

	model, err := provider.New(ctx, cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	svc := resume.NewParseService(ingestor, resume.NewExtractor(model, logger, cli.ExtractTimeout), logger)

	rec, err := svc.Parse(ctx, upload)
	if err != nil {
		fmt.Fprintln(stderr, resume.UserMessage(err))
		return exitFailed
	}

	if err := writeRecord(cli.Output, stdout, rec, cli.Compact); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return exitFailed
	}
	return exitOK
}

func writeRecord(path string, stdout io.Writer, rec resume.ResumeRecord, compact bool) error {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(rec)
	} else {
		out, err = json.MarshalIndent(rec, "", "  ")
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if path == "" || path == "-" {
		_, err = stdout.Write(out)
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
