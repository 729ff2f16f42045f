package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

const maxLoggedFields = 8

// AllowAnyLogs lets the logger accept any call at any level with up to
// maxLoggedFields fields. Tests asserting a specific log line register it first.
func AllowAnyLogs(l *Logger) *Logger {
	for n := 0; n <= maxLoggedFields; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return l
}
