package command

// Messages shown to the user. Format verbs take the eatery display form or a count.
const (
	MessageAddSuccess    = "New eatery added: %s"
	MessageEditSuccess   = "Edited Eatery: %s"
	MessageDeleteSuccess = "Deleted Eatery: %s"
	MessageTagSuccess    = "Tagged Eatery: %s"
	MessageUntagSuccess  = "Untagged Eatery: %s"
	MessageListSuccess   = "Listed all eateries"
	MessageClearSuccess  = "Food guide has been cleared!"
	MessageExitAck       = "Exiting food guide as requested ..."
	MessageHelpShown     = "Opened help window."

	MessageEateriesListedOverview = "%d eateries listed!"

	MessageNotTagged = "At least one tag must be provided."
	MessageNotEdited = "At least one field to edit must be provided."
)
