package dto

// Node parameter shapes, as the form editor stores them.

type SectionsAuto struct {
	SectionValuesAuto []SectionValueAuto `json:"sectionValuesAuto"`
}

type SectionValueAuto struct {
	TitleAuto string        `json:"titleAuto"`
	Rows      *RowsAutoSpec `json:"rows"`
}

type RowsAutoSpec struct {
	RowValuesAuto []RowValueAuto `json:"rowValuesAuto"`
}

type RowValueAuto struct {
	RowTitleExp       string `json:"rowTitleExp"`
	RowDescriptionExp string `json:"rowDescriptionExp"`
	RowIDExp          string `json:"rowIdExp"`
}

type SectionValueManual struct {
	Title string          `json:"title"`
	Rows  *RowsManualSpec `json:"rows"`
}

type RowsManualSpec struct {
	RowValuesManual []RowValueManual `json:"rowValuesManual"`
}

type RowValueManual struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RowID       string `json:"rowId"`
}

type MessageOptions struct {
	Delay    float64         `json:"delay"`
	Footer   string          `json:"footer"`
	Quoted   *QuotedOption   `json:"quoted"`
	Mentions *MentionsOption `json:"mentions"`
}

type QuotedOption struct {
	MessageQuoted *MessageQuoted `json:"messageQuoted"`
}

type MessageQuoted struct {
	MessageID string `json:"messageId"`
}

type MentionsOption struct {
	MentionsSettings *MentionsSettings `json:"mentionsSettings"`
}

type MentionsSettings struct {
	MentionsEveryOne bool   `json:"mentionsEveryOne"`
	Mentioned        string `json:"mentioned"`
}

// Outbound body of POST /message/sendList/{instanceName}.

type SendListPayload struct {
	Number           string        `json:"number"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	ButtonText       string        `json:"buttonText"`
	FooterText       string        `json:"footerText"`
	Sections         []ListSection `json:"sections"`
	Delay            float64       `json:"delay,omitempty"`
	Quoted           *QuotedKey    `json:"quoted,omitempty"`
	MentionsEveryOne bool          `json:"mentionsEveryOne,omitempty"`
	Mentioned        []string      `json:"mentioned,omitempty"`
}

type ListSection struct {
	Title string    `json:"title"`
	Rows  []ListRow `json:"rows"`
}

type ListRow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RowID       string `json:"rowId"`
}

type QuotedKey struct {
	Key QuotedKeyID `json:"key"`
}

type QuotedKeyID struct {
	ID string `json:"id"`
}
