// Package actions is the fixed vocabulary of prototype button actions.
// Every action resolves to an Outcome; none of them does real work.
package actions

import "strings"

type Action int

const (
	Logout Action = iota + 1
	SendTeamReminder
	ViewAnonymisedPaths
	ViewThemes
	ExportReport
	DownloadData
	RequestCorrection
	RequestDeletion
	ReviewChoices
	ReplayScenario
	SaveSettings
	CancelSettings
	ForgotPassword
	OpenCultureReport
	PrintReport
	SaveReflection
	APIPlaceholder
)

// All lists every action in declaration order.
var All = []Action{
	Logout, SendTeamReminder, ViewAnonymisedPaths, ViewThemes, ExportReport,
	DownloadData, RequestCorrection, RequestDeletion, ReviewChoices,
	ReplayScenario, SaveSettings, CancelSettings, ForgotPassword,
	OpenCultureReport, PrintReport, SaveReflection, APIPlaceholder,
}

var ids = map[Action]string{
	Logout:              "logout",
	SendTeamReminder:    "send-team-reminder",
	ViewAnonymisedPaths: "view-anonymised-paths",
	ViewThemes:          "view-themes",
	ExportReport:        "export-report",
	DownloadData:        "download-data",
	RequestCorrection:   "request-correction",
	RequestDeletion:     "request-deletion",
	ReviewChoices:       "review-choices",
	ReplayScenario:      "replay-scenario",
	SaveSettings:        "save-settings",
	CancelSettings:      "cancel-settings",
	ForgotPassword:      "forgot-password",
	OpenCultureReport:   "open-culture-report",
	PrintReport:         "print-report",
	SaveReflection:      "save-reflection",
	APIPlaceholder:      "api-placeholder",
}

var byID = func() map[string]Action {
	m := make(map[string]Action, len(ids))
	for a, id := range ids {
		m[id] = a
	}
	return m
}()

// String returns the identifier used in markup, e.g. "save-reflection".
func (a Action) String() string {
	if id, ok := ids[a]; ok {
		return id
	}
	return "unknown"
}

// Parse maps a markup identifier to its Action.
func Parse(id string) (Action, bool) {
	a, ok := byID[strings.TrimSpace(id)]
	return a, ok
}

type Kind int

const (
	KindAlert Kind = iota + 1
	KindNavigate
	KindLogout
)

// Outcome is what the page should do after an action ran.
type Outcome struct {
	Kind     Kind
	Message  string // KindAlert
	Print    bool   // KindAlert: also open the print dialog
	Location string // KindNavigate: page file, e.g. "index.html"
}

// Input carries the form values some actions read.
type Input struct {
	Reflection string
}

func alert(msg string) Outcome { return Outcome{Kind: KindAlert, Message: msg} }
func navigate(page string) Outcome { return Outcome{Kind: KindNavigate, Location: page} }

// Dispatch runs a. The switch is exhaustive over the vocabulary; an Action
// outside it panics since it cannot come out of Parse.
func Dispatch(a Action, in Input) Outcome {
	switch a {
	case Logout:
		return Outcome{Kind: KindLogout}
	case SendTeamReminder:
		return alert("Prototype: a reminder email would be sent to all team members who are not complete.")
	case ViewAnonymisedPaths:
		return alert("Prototype: a chart of anonymised choice paths for this scenario would appear here.")
	case ViewThemes:
		return alert("Prototype: this would show key themes summarised from scenario responses.")
	case ExportReport:
		return alert("Prototype: an anonymised CSV/PDF report would be generated for HR.")
	case DownloadData:
		return alert("Prototype: a JSON/CSV export of your personal training data would be generated.")
	case RequestCorrection:
		return alert("Prototype: a data correction request form would be sent to the DPO.")
	case RequestDeletion:
		return alert("Prototype: a data deletion request would be submitted for review.")
	case ReviewChoices:
		return alert("Prototype: you would see your decisions compared with alternative inclusive options.")
	case ReplayScenario:
		return navigate("scenario-training.html")
	case SaveSettings:
		return alert("Prototype: your notification and privacy settings would be saved.")
	case CancelSettings:
		return navigate("index.html")
	case ForgotPassword:
		return alert("Prototype: a password reset link would be emailed to your work address.")
	case OpenCultureReport:
		return navigate("culture-report.html")
	case PrintReport:
		out := alert("Prototype: use your browser's 'Save as PDF' to export this report.")
		out.Print = true
		return out
	case SaveReflection:
		if strings.TrimSpace(in.Reflection) == "" {
			return alert("Please write a short reflection before saving.")
		}
		return alert("Prototype: your reflection would be saved to your learning record.")
	case APIPlaceholder:
		return alert("Prototype: this is a placeholder for future integration with HR or LMS APIs.")
	}
	panic("actions: dispatch of unknown action " + a.String())
}
