// Package reportpb holds the protobuf messages stored in report files.
// Regenerate with go generate after editing proto/scanreport/report/v1/report.proto.
package reportpb

//go:generate protoc -I ../../../proto --go_out=. --go_opt=module=github.com/Sumatoshi-tech/scanreport/pkg/report/reportpb scanreport/report/v1/report.proto
