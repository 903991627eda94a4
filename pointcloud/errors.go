package pointcloud

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

//Error is the concrete error type of the pointcloud package. It
//fulfills knet.Error. The filename is the dataset file involved, or
//empty for the in-memory pipeline.
type Error struct {
	message  string
	filename string
	context  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	msg := "pointcloud error"
	if err.filename != "" {
		msg += " in " + err.filename
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

//FileName returns the dataset file associated with the error, if any.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error invalidates the whole computation.
func (err Error) Critical() bool { return err.critical }

const (
	UnsupportedBudget   = "unsupported point budget (want 3, 27, 125 or 343)"
	IncompleteAxes      = "three-point budget needs exactly the three axis reflections"
	BudgetOverflow      = "selected more points than the budget allows"
	NonPositiveRadius   = "non-positive limiting-sphere radius"
	OutsideUnitBall     = "projected point outside the unit ball"
	IntensityOutOfScale = "normalized intensity out of scale"
	UnableToOpen        = "unable to open file"
	WrongFormat         = "wrong format in the ptc file"
	CloudUnIniWrite     = "cloud writer uninitialized or closed"
	CloudUnIniRead      = "cloud reader uninitialized or closed"
)

var _ knet.Error = Error{}
