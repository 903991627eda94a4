package dataset

import (
	knet "github.com/usccolumbia/deepKNet"
)

//errDecorate is a helper that asserts that the error implements
//knet.Error and decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(knet.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the concrete error type of the dataset package. It fulfills
//knet.Error. The id field names the entry being processed when the error
//occurred, or is empty for corpus-level failures.
type Error struct {
	message  string
	id       string
	context  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	msg := "dataset error"
	if err.id != "" {
		msg += " in entry " + err.id
	}
	msg += ": " + err.message
	if err.context != "" {
		msg += ": " + err.context
	}
	return msg
}

//Decorate adds new information to the error and returns the accumulated
//decoration.
func (E Error) Decorate(deco string) []string {
	//The receiver is not a pointer, but E.deco is a slice, hence a
	//pointer itself, so the append is visible to holders of the error.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//EntryID returns the id of the entry associated with the error, if any.
func (err Error) EntryID() string { return err.id }

//Critical returns true if the error invalidates the whole computation.
func (err Error) Critical() bool { return err.critical }

const (
	EmptyCorpus   = "no entries in the corpus"
	DuplicateID   = "duplicate entry id"
	EmptyID       = "entry with empty id"
	NilEntry      = "entry with nil crystal"
	UnableToWrite = "unable to write file"
)

var _ knet.Error = Error{}
