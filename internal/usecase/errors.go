package usecase

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Stage names the step of the relay pipeline an error came from.
type Stage string

const (
	StageDecode  Stage = "decode"
	StageParse   Stage = "parse"
	StageDeliver Stage = "deliver"
)

// StageError tags an error with the pipeline stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

// Fail wraps err into a StageError for stage. A nil err stays nil.
func Fail(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

func (e *StageError) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error { return e.Err }

// Cause lets errors.Cause walk through the stage tag.
func (e *StageError) Cause() error { return e.Err }

// Format prints the wrapped stack trace for %+v.
func (e *StageError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s: %+v", e.Stage, e.Err)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		io.WriteString(s, e.Error())
	}
}

// StageOf reports the stage recorded anywhere in err's chain.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
