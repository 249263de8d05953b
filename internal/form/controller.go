package form

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"careercoach/dashboard-api/internal/models"
)

// MaxJDEntries caps the job posting list; the list never shrinks below one
// entry.
const MaxJDEntries = 5

// Role identifies a document slot.
type Role string

const (
	RoleCareer Role = "career"
	RoleResume Role = "resume"
)

// State is the submission lifecycle of the controller.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// FileDescriptor mirrors the metadata the presentation layer observes when a
// file is selected. The content stays on the user's machine.
type FileDescriptor struct {
	Name     string
	Size     int64
	MimeType string
}

// JDEntry is one job posting text, keyed by a session-unique id so removals
// in the middle of the list never confuse entry identity.
type JDEntry struct {
	ID   int
	Text string
}

const (
	msgInvalidFileType  = "PDF または Word ファイル（.doc / .docx）を選択してください。"
	msgUploadRequired   = "職務経歴書または履歴書のいずれか（または両方）をアップロードしてください。"
	msgJDInputRequired  = "少なくとも1件の求人票を入力してください。"
	msgConnectionFailed = "通信に失敗しました。APIキーの設定を確認してください。"
	msgNoResult         = "解析結果を取得できませんでした。"
)

// ErrBusy is returned when Submit is called while a submission is already in
// flight.
var ErrBusy = errors.New("submission already in progress")

var docExtPattern = regexp.MustCompile(`(?i)\.(pdf|doc|docx)$`)

// Controller owns the mutable form state: two optional file slots and an
// ordered job posting list. One submission may be outstanding at a time.
type Controller struct {
	client *Client

	mu     sync.Mutex
	career *FileDescriptor
	resume *FileDescriptor
	jds    []JDEntry
	nextID int
	state  State
	result string
	alert  string
}

// NewController creates a controller with one blank job posting entry.
func NewController(client *Client) *Controller {
	return &Controller{
		client: client,
		jds:    []JDEntry{{ID: 1}},
		nextID: 2,
		state:  StateIdle,
	}
}

// SetFile replaces the descriptor for a role. Names outside the document
// allow-list are rejected and the prior descriptor stays in place.
func (c *Controller) SetFile(role Role, fd FileDescriptor) error {
	if !docExtPattern.MatchString(fd.Name) {
		c.mu.Lock()
		c.alert = msgInvalidFileType
		c.mu.Unlock()
		return errors.New(msgInvalidFileType)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch role {
	case RoleCareer:
		c.career = &fd
	case RoleResume:
		c.resume = &fd
	}
	return nil
}

// ClearFile sets the role's descriptor to absent.
func (c *Controller) ClearFile(role Role) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch role {
	case RoleCareer:
		c.career = nil
	case RoleResume:
		c.resume = nil
	}
}

// File returns a copy of the role's descriptor, or nil when absent.
func (c *Controller) File(role Role) *FileDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	var fd *FileDescriptor
	switch role {
	case RoleCareer:
		fd = c.career
	case RoleResume:
		fd = c.resume
	}
	if fd == nil {
		return nil
	}
	copied := *fd
	return &copied
}

// AddJD appends a blank entry with a fresh id. No-op at the cap.
func (c *Controller) AddJD() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.jds) >= MaxJDEntries {
		return
	}
	c.jds = append(c.jds, JDEntry{ID: c.nextID})
	c.nextID++
}

// RemoveJD deletes the entry with the given id. No-op when only one entry
// remains or the id is unknown. Ids are never reused.
func (c *Controller) RemoveJD(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.jds) <= 1 {
		return
	}
	for i, jd := range c.jds {
		if jd.ID == id {
			c.jds = append(c.jds[:i], c.jds[i+1:]...)
			return
		}
	}
}

// UpdateJD replaces the text of the entry with the matching id.
func (c *Controller) UpdateJD(id int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, jd := range c.jds {
		if jd.ID == id {
			c.jds[i].Text = text
			return
		}
	}
}

// JDs returns a copy of the entries in order.
func (c *Controller) JDs() []JDEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]JDEntry, len(c.jds))
	copy(out, c.jds)
	return out
}

// State returns the current submission state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the text shown in the result area: the latest critique, or
// the server's error message after a failed submission.
func (c *Controller) Result() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Alert returns the latest user-facing warning (validation or connectivity),
// empty when the last operation raised none.
func (c *Controller) Alert() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alert
}

// Submit validates the form and performs one critique round trip. Validation
// failures set Alert and skip the network entirely; a previously displayed
// result is left untouched. After a response, Result holds either the
// critique or the server's error text.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = StateValidating
	c.alert = ""

	hasFile := (c.career != nil && c.career.Name != "") || (c.resume != nil && c.resume.Name != "")
	hasJD := false
	for _, jd := range c.jds {
		if strings.TrimSpace(jd.Text) != "" {
			hasJD = true
			break
		}
	}

	if !hasFile {
		c.alert = msgUploadRequired
		c.state = StateIdle
		c.mu.Unlock()
		return errors.New(msgUploadRequired)
	}
	if !hasJD {
		c.alert = msgJDInputRequired
		c.state = StateIdle
		c.mu.Unlock()
		return errors.New(msgJDInputRequired)
	}

	payload := c.buildPayload()
	c.state = StateSubmitting
	c.mu.Unlock()

	response, err := c.client.Critique(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle

	if err != nil {
		c.alert = msgConnectionFailed
		return errors.Wrap(err, "critique submission failed")
	}

	switch {
	case response.Result != "":
		c.result = response.Result
	case response.Error != "":
		c.result = response.Error
	default:
		c.result = msgNoResult
	}
	return nil
}

// buildPayload derives the wire payload from the current state: entry ids are
// dropped, texts trimmed and blank entries filtered, order preserved. Caller
// holds c.mu.
func (c *Controller) buildPayload() models.CritiqueRequest {
	req := models.CritiqueRequest{}
	if c.career != nil {
		req.FileInfo.Career = &models.FileInfo{Name: c.career.Name, Size: c.career.Size, Type: c.career.MimeType}
	}
	if c.resume != nil {
		req.FileInfo.Resume = &models.FileInfo{Name: c.resume.Name, Size: c.resume.Size, Type: c.resume.MimeType}
	}
	req.JDs = make([]string, 0, len(c.jds))
	for _, jd := range c.jds {
		if text := strings.TrimSpace(jd.Text); text != "" {
			req.JDs = append(req.JDs, text)
		}
	}
	return req
}
