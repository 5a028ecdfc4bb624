package events

// Topics lists every topic the outbox relay may publish to.
func Topics() []string {
	return []string{
		EmployeeLifecycleTopic,
		PayrollBulkRequestedTopic,
		EmployeeImportRequestedTopic,
		NotificationEmailTopic,
	}
}
