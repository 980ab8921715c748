package resconf

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/resconf/pkg/commands/device"
	"github.com/arthur-debert/resconf/pkg/commands/filter"
	"github.com/arthur-debert/resconf/pkg/commands/match"
	"github.com/arthur-debert/resconf/pkg/commands/order"
	"github.com/arthur-debert/resconf/pkg/commands/parse"
	"github.com/arthur-debert/resconf/pkg/output"
)

func parseReport(r *parse.Result) *output.Report {
	report := &output.Report{
		Title:  MsgParseTitle,
		Header: []string{"Input", "Qualifiers", "Normalized", "Min SDK", "Description"},
		Data:   r,
	}
	for _, f := range r.Folders {
		if !f.Valid {
			report.AddRow(f.Input, "invalid", "", "", f.Error)
			continue
		}
		segments := make([]string, 0, len(f.Qualifiers))
		for _, q := range f.Qualifiers {
			segments = append(segments, q.Axis+"="+q.Segment)
		}
		report.AddRow(f.Input, strings.Join(segments, " "), f.Normalized, itoa(f.MinSdk), f.Display)
	}
	return report
}

func matchReport(r *match.Result) *output.Report {
	reference := r.Reference
	if reference == "" {
		reference = "default"
	}
	report := &output.Report{
		Title:  fmt.Sprintf(MsgMatchTitle, reference),
		Header: []string{"Candidate", "Configuration", "Matches", "Selected"},
		Data:   r,
	}
	for _, c := range r.Candidates {
		report.AddRow(c.Name, c.Configuration, boolMark(c.Matches), boolMark(c.Selected))
	}

	if r.Device != "" {
		state := r.State
		if state == "" {
			state = "default"
		}
		report.Notes = append(report.Notes, fmt.Sprintf(MsgMatchDeviceNote, r.Device, state))
	}
	if r.Found() {
		report.Notes = append(report.Notes, fmt.Sprintf(MsgBestNote, strings.Join(r.Best, ", ")))
	} else {
		report.Notes = append(report.Notes, MsgNoMatchNote)
	}
	return report
}

func sortReport(r *order.Result) *output.Report {
	report := &output.Report{
		Title:  MsgSortTitle,
		Header: []string{"Folder", "Configuration", "Min SDK"},
		Data:   r,
	}
	for _, e := range r.Entries {
		report.AddRow(e.Name, e.Configuration, itoa(e.MinSdk))
	}
	return report
}

func filterReport(r *filter.Result) *output.Report {
	report := &output.Report{
		Title:  MsgFilterTitle,
		Header: []string{"Folder", "Kept"},
		Data:   r,
	}
	for _, name := range r.Kept {
		report.AddRow(name, "yes")
	}
	for _, name := range r.Dropped {
		report.AddRow(name, "")
	}
	report.Notes = append(report.Notes, fmt.Sprintf(MsgFilterNote, len(r.Kept), len(r.Kept)+len(r.Dropped)))
	return report
}

func devicesReport(r *device.ListResult) *output.Report {
	report := &output.Report{
		Title:  MsgDevicesTitle,
		Header: []string{"ID", "Name", "Manufacturer", "API", "Density", "States"},
		Data:   r,
	}
	for _, d := range r.Devices {
		report.AddRow(d.ID, d.Name, d.Manufacturer, itoa(d.APILevel), d.Density, strings.Join(d.States, ", "))
	}
	if len(r.Devices) == 0 {
		report.Notes = append(report.Notes, MsgNoDevices)
	}
	return report
}

func deviceReport(r *device.ShowResult) *output.Report {
	report := &output.Report{
		Title:  fmt.Sprintf(MsgDeviceTitle, r.Name, r.ID),
		Header: []string{"State", "Default", "Size (dp)", "Configuration"},
		Data:   r,
	}
	for _, s := range r.Details {
		report.AddRow(s.Name, boolMark(s.Default), fmt.Sprintf("%dx%d", s.WidthDp, s.HeightDp), s.Configuration)
	}
	return report
}
