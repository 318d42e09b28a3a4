package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"evolution-connector/internal/domain/dto"
	Iservices "evolution-connector/internal/domain/interfaces/services"
	"evolution-connector/internal/infra/execution"
)

const (
	autoSectionTitle   = "Seção Automática"
	manualSectionTitle = "Seção Manual"
	whatsAppJIDSuffix  = "@s.whatsapp.net"
)

var (
	ErrNoAutoSections   = errors.New("Parâmetros inválidos ou ausentes: Nenhuma seção automática preenchida.")
	ErrNoAutoRows       = errors.New("Parâmetros inválidos ou ausentes: Você deve adicionar ao menos uma configuração de linhas automáticas.")
	ErrNoManualSections = errors.New("Parâmetros inválidos ou ausentes: Nenhuma seção manual preenchida.")
)

// SendListRequest is a fully built call to /message/sendList.
type SendListRequest struct {
	InstanceName string
	Payload      dto.SendListPayload
}

func (r SendListRequest) URI() string {
	return fmt.Sprintf("/message/sendList/%s", url.PathEscape(r.InstanceName))
}

// BuildSendListRequest reads the node parameters of item 0 and assembles the
// request body. Auto rows are produced once per input item.
func BuildSendListRequest(ef Iservices.IExecuteFunctions) (SendListRequest, error) {
	var request SendListRequest

	required := []struct {
		name   string
		target *string
	}{
		{"instanceName", &request.InstanceName},
		{"remoteJid", &request.Payload.Number},
		{"title", &request.Payload.Title},
		{"description", &request.Payload.Description},
		{"buttonText", &request.Payload.ButtonText},
	}
	for _, param := range required {
		value, err := ef.StringParameter(param.name, 0)
		if err != nil {
			return request, err
		}
		*param.target = value
	}

	enableAutoRows, err := ef.BoolParameter("enableAutoRows", 0, false)
	if err != nil {
		return request, err
	}

	options := dto.MessageOptions{}
	if err := ef.DecodeParameter("options_message", 0, &options); err != nil {
		return request, err
	}

	footerText, err := ef.StringParameter("footerText", 0)
	if err != nil {
		var paramErr *execution.ParameterError
		if !errors.As(err, &paramErr) || !paramErr.Missing() || options.Footer == "" {
			return request, err
		}
		footerText = options.Footer
	}
	request.Payload.FooterText = footerText

	if enableAutoRows {
		request.Payload.Sections, err = buildAutoSections(ef)
	} else {
		request.Payload.Sections, err = buildManualSections(ef)
	}
	if err != nil {
		return request, err
	}

	applyMessageOptions(&request.Payload, options)
	return request, nil
}

func buildAutoSections(ef Iservices.IExecuteFunctions) ([]dto.ListSection, error) {
	sectionsAuto := []dto.SectionValueAuto{}
	if err := ef.DecodeParameter("sectionsAuto.sectionValuesAuto", 0, &sectionsAuto); err != nil {
		return nil, err
	}
	if len(sectionsAuto) == 0 {
		return nil, ErrNoAutoSections
	}

	// Only the first automatic section is used.
	firstSection := sectionsAuto[0]
	sectionTitle := firstSection.TitleAuto
	if sectionTitle == "" {
		sectionTitle = autoSectionTitle
	}

	var rowValuesAuto []dto.RowValueAuto
	if firstSection.Rows != nil {
		rowValuesAuto = firstSection.Rows.RowValuesAuto
	}
	if len(rowValuesAuto) == 0 {
		return nil, ErrNoAutoRows
	}

	template := rowValuesAuto[0]
	items := ef.InputData()
	rows := make([]dto.ListRow, 0, len(items))
	for index := range items {
		row := dto.ListRow{
			Title:       template.RowTitleExp,
			Description: template.RowDescriptionExp,
			RowID:       template.RowIDExp,
		}
		if row.Title == "" {
			row.Title = fmt.Sprintf("Item %d", index+1)
		}
		if row.RowID == "" {
			row.RowID = fmt.Sprintf("autoRow_%d", index+1)
		}
		rows = append(rows, row)
	}

	return []dto.ListSection{{Title: sectionTitle, Rows: rows}}, nil
}

func buildManualSections(ef Iservices.IExecuteFunctions) ([]dto.ListSection, error) {
	sectionsManual := []dto.SectionValueManual{}
	if err := ef.DecodeParameter("sectionsManual.sectionValuesManual", 0, &sectionsManual); err != nil {
		return nil, err
	}
	if len(sectionsManual) == 0 {
		return nil, ErrNoManualSections
	}

	sections := make([]dto.ListSection, 0, len(sectionsManual))
	for _, section := range sectionsManual {
		var rowValuesManual []dto.RowValueManual
		if section.Rows != nil {
			rowValuesManual = section.Rows.RowValuesManual
		}

		rows := make([]dto.ListRow, 0, len(rowValuesManual))
		for _, row := range rowValuesManual {
			rowID := row.RowID
			if rowID == "" {
				// Uses the raw section title, even when it is empty.
				rowID = fmt.Sprintf("%s_%s", section.Title, row.Title)
			}
			rows = append(rows, dto.ListRow{
				Title:       row.Title,
				Description: row.Description,
				RowID:       rowID,
			})
		}

		title := section.Title
		if title == "" {
			title = manualSectionTitle
		}
		sections = append(sections, dto.ListSection{Title: title, Rows: rows})
	}

	return sections, nil
}

func applyMessageOptions(payload *dto.SendListPayload, options dto.MessageOptions) {
	if options.Delay != 0 {
		payload.Delay = options.Delay
	}

	if options.Quoted != nil && options.Quoted.MessageQuoted != nil && options.Quoted.MessageQuoted.MessageID != "" {
		payload.Quoted = &dto.QuotedKey{Key: dto.QuotedKeyID{ID: options.Quoted.MessageQuoted.MessageID}}
	}

	if options.Mentions != nil && options.Mentions.MentionsSettings != nil {
		settings := options.Mentions.MentionsSettings
		if settings.MentionsEveryOne {
			payload.MentionsEveryOne = true
		} else if settings.Mentioned != "" {
			payload.Mentioned = NormalizeMentioned(settings.Mentioned)
		}
	}
}

// NormalizeMentioned splits a comma separated list of numbers and turns each
// one into a WhatsApp JID. Blank entries are kept as a bare suffix.
func NormalizeMentioned(mentioned string) []string {
	parts := strings.Split(mentioned, ",")
	numbers := make([]string, 0, len(parts))
	for _, part := range parts {
		number := strings.TrimSpace(part)
		if !strings.Contains(number, whatsAppJIDSuffix) {
			number += whatsAppJIDSuffix
		}
		numbers = append(numbers, number)
	}
	return numbers
}
