package analyzer

import "fmt"

// UploadError indicates the upload of the local video to the file service failed.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("analyzer: upload %q: %v", e.Path, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// ProcessingFailedError indicates the remote file entered the failed state.
type ProcessingFailedError struct {
	Name    string
	Message string
}

func (e *ProcessingFailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("analyzer: processing failed for file %q", e.Name)
	}
	return fmt.Sprintf("analyzer: processing failed for file %q: %s", e.Name, e.Message)
}

// PollTimeoutError indicates the remote file was still processing after the
// configured number of polls.
type PollTimeoutError struct {
	Name     string
	Attempts int
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("analyzer: file %q still processing after %d polls", e.Name, e.Attempts)
}

// GenerationError wraps a failure from the token-count or generate call.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("analyzer: %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
