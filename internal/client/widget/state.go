package widget

import (
	"github.com/dmitrijs2005/sharedrop/internal/client/models"
	"github.com/dmitrijs2005/sharedrop/internal/common"
)

type ButtonState struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

// UIState is everything the user can see.
type UIState struct {
	DropZoneActive bool `json:"dropZoneActive"`

	// Picker is the file-input selection; nil when cleared.
	Picker *models.SelectedFile `json:"picker,omitempty"`

	ProgressVisible bool    `json:"progressVisible"`
	ProgressPercent int     `json:"progressPercent"`
	BackgroundScale float64 `json:"backgroundScale"`
	ForegroundScale float64 `json:"foregroundScale"`
	Status          string  `json:"status"`

	SharingVisible bool   `json:"sharingVisible"`
	FileURL        string `json:"fileUrl"`
	URLSelected    bool   `json:"urlSelected"`

	EmailTo    string      `json:"emailTo"`
	EmailFrom  string      `json:"emailFrom"`
	SendButton ButtonState `json:"sendButton"`
}

func initialState() UIState {
	return UIState{SendButton: ButtonState{Enabled: false, Label: common.LabelSend}}
}

func (s UIState) clone() UIState {
	if s.Picker != nil {
		p := *s.Picker
		s.Picker = &p
	}
	return s
}
