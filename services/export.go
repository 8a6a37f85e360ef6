package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/vercel098/central-city-soccer/models"
)

// csvExportFields are the selectable columns, in output order.
var csvExportFields = []string{
	"playerId",
	"fullName",
	"type",
	"nationality",
	"playerPosition",
	"contactNumber",
	"status",
	"guardianInfo",
	"documents",
}

// ExportCSV renders the admin player list as CSV. fields selects and orders
// the columns; an empty selection exports everything.
func (s *playerService) ExportCSV(ctx context.Context, fields []string) ([]byte, error) {
	if len(fields) == 0 {
		fields = csvExportFields
	}
	for _, f := range fields {
		if !isExportField(f) {
			return nil, fmt.Errorf("%w: unknown export field %q", ErrValidationFailed, f)
		}
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(fields); err != nil {
		return nil, err
	}
	for i := range players {
		row := make([]string, len(fields))
		for j, f := range fields {
			row[j] = exportFieldValue(&players[i], f)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isExportField(name string) bool {
	for _, f := range csvExportFields {
		if f == name {
			return true
		}
	}
	return false
}

func exportFieldValue(player *models.Player, field string) string {
	switch field {
	case "playerId":
		return player.PlayerID
	case "fullName":
		return player.FullName
	case "type":
		return string(player.Type)
	case "nationality":
		return player.Nationality
	case "playerPosition":
		return string(player.PlayerPosition)
	case "contactNumber":
		return player.ContactNumber
	case "status":
		return string(player.Status)
	case "guardianInfo":
		if player.GuardianInfo == nil {
			return ""
		}
		return fmt.Sprintf("%s, %s", player.GuardianInfo.GuardianName, player.GuardianInfo.GuardianContactNumber)
	case "documents":
		return player.Documents.PassportSizePhoto
	}
	return ""
}
