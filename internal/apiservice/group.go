// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package apiservice

import "github.com/specialistvlad/todocsv/internal/schema"

// GroupByID partitions rows by their id. Every row is kept and rows sharing
// an id stay in input order.
func GroupByID(rows []schema.Row) map[int64][]schema.Row {
	grouped := make(map[int64][]schema.Row)
	for _, row := range rows {
		grouped[row.ID] = append(grouped[row.ID], row)
	}
	return grouped
}

// GroupData is GroupByID exposed on the Service.
func (s *Service) GroupData(rows []schema.Row) map[int64][]schema.Row {
	return GroupByID(rows)
}
