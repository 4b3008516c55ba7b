package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type MainTitleTag struct{}

var MainTitleTagComponent = NewComponent[MainTitleTag]()

type SubTitleTag struct{}

var SubTitleTagComponent = NewComponent[SubTitleTag]()
