package tlv

// Field identifiers. Each value is a FieldKind flag OR'd with a numeric
// suffix. They are a wire contract shared with every peer: never renumber.
const (
	// General
	FieldAny       FieldID = FieldID(KindNone) | 0
	FieldMethod    FieldID = FieldID(KindString) | 1
	FieldRequestID FieldID = FieldID(KindString) | 2
	FieldException FieldID = FieldID(KindGroup) | 3
	FieldResult    FieldID = FieldID(KindUint32) | 4
	FieldString    FieldID = FieldID(KindString) | 10
	FieldUint      FieldID = FieldID(KindUint32) | 11
	FieldBool      FieldID = FieldID(KindBool) | 12
	FieldLength    FieldID = FieldID(KindUint32) | 25
	FieldData      FieldID = FieldID(KindBytes) | 26
	FieldFlags     FieldID = FieldID(KindUint32) | 27
	FieldCommandID FieldID = FieldID(KindUint32) | 1

	// Channels
	FieldChannelID        FieldID = FieldID(KindUint32) | 50
	FieldChannelType      FieldID = FieldID(KindString) | 51
	FieldChannelData      FieldID = FieldID(KindBytes) | 52
	FieldChannelDataGroup FieldID = FieldID(KindGroup) | 53
	FieldChannelClass     FieldID = FieldID(KindUint32) | 54
	FieldChannelParentID  FieldID = FieldID(KindUint32) | 55

	// File seeking
	FieldSeekWhence FieldID = FieldID(KindUint32) | 70
	FieldSeekOffset FieldID = FieldID(KindUint32) | 71
	FieldSeekPos    FieldID = FieldID(KindUint32) | 72

	// Exceptions
	FieldExceptionCode   FieldID = FieldID(KindUint32) | 300
	FieldExceptionString FieldID = FieldID(KindString) | 301

	// Migration
	FieldLibraryPath       FieldID = FieldID(KindString) | 400
	FieldTargetPath        FieldID = FieldID(KindString) | 401
	FieldMigratePID        FieldID = FieldID(KindUint32) | 402
	FieldMigratePayloadLen FieldID = FieldID(KindUint32) | 403
	FieldMigratePayload    FieldID = FieldID(KindString) | 404
	FieldMigrateArch       FieldID = FieldID(KindUint32) | 405
	FieldMigrateBaseAddr   FieldID = FieldID(KindUint32) | 407
	FieldMigrateEntryPoint FieldID = FieldID(KindUint32) | 408
	FieldMigrateSocketPath FieldID = FieldID(KindUint32) | 409
	FieldMigrateStubLen    FieldID = FieldID(KindUint32) | 410
	FieldMigrateStub       FieldID = FieldID(KindUint32) | 411

	// Transports
	FieldTransType        FieldID = FieldID(KindUint32) | 430
	FieldTransURL         FieldID = FieldID(KindString) | 431
	FieldTransUA          FieldID = FieldID(KindString) | 432
	FieldTransCommTimeout FieldID = FieldID(KindUint32) | 433
	FieldTransSessExp     FieldID = FieldID(KindUint32) | 434
	FieldTransCertHash    FieldID = FieldID(KindBytes) | 435
	FieldTransProxyHost   FieldID = FieldID(KindString) | 436
	FieldTransProxyUser   FieldID = FieldID(KindString) | 437
	FieldTransProxyPass   FieldID = FieldID(KindString) | 438
	FieldTransRetryTotal  FieldID = FieldID(KindUint32) | 439
	FieldTransRetryWait   FieldID = FieldID(KindUint32) | 440
	FieldTransHeaders     FieldID = FieldID(KindString) | 441
	FieldTransGroup       FieldID = FieldID(KindGroup) | 442

	// Identification
	FieldMachineID   FieldID = FieldID(KindString) | 460
	FieldUUID        FieldID = FieldID(KindBytes) | 461
	FieldSessionGUID FieldID = FieldID(KindBytes) | 462

	// Cipher negotiation and packet encryption
	FieldCipherName       FieldID = FieldID(KindString) | 500
	FieldCipherParameters FieldID = FieldID(KindGroup) | 501
	FieldRSAPubKey        FieldID = FieldID(KindString) | 550
	FieldSymKeyType       FieldID = FieldID(KindUint32) | 551
	FieldSymKey           FieldID = FieldID(KindBytes) | 552
	FieldEncSymKey        FieldID = FieldID(KindBytes) | 553

	// Handles
	FieldHandle        FieldID = FieldID(KindUint64) | 600
	FieldInherit       FieldID = FieldID(KindBool) | 601
	FieldProcessHandle FieldID = FieldID(KindUint64) | 630
	FieldThreadHandle  FieldID = FieldID(KindUint64) | 631
	FieldPrivilege     FieldID = FieldID(KindString) | 632

	// Pivots
	FieldPivotID            FieldID = FieldID(KindBytes) | 650
	FieldPivotStageData     FieldID = FieldID(KindBytes) | 651
	FieldPivotStageDataLen  FieldID = FieldID(KindUint32) | 652
	FieldPivotNamedPipeName FieldID = FieldID(KindString) | 653

	// Registry
	FieldHKey       FieldID = FieldID(KindUint64) | 1000
	FieldBaseKey    FieldID = FieldID(KindString) | 1001
	FieldPermission FieldID = FieldID(KindUint32) | 1002
	FieldKeyName    FieldID = FieldID(KindString) | 1003
	FieldValueName  FieldID = FieldID(KindString) | 1010
	FieldValueType  FieldID = FieldID(KindUint32) | 1011
	FieldValueData  FieldID = FieldID(KindBytes) | 1012
	FieldTargetHost FieldID = FieldID(KindString) | 1013

	// System config
	FieldComputerName        FieldID = FieldID(KindString) | 1040
	FieldOperatingSystemName FieldID = FieldID(KindString) | 1041
	FieldUserName            FieldID = FieldID(KindString) | 1042
	FieldArchitecture        FieldID = FieldID(KindString) | 1043
	FieldLangSystem          FieldID = FieldID(KindString) | 1044
	FieldSID                 FieldID = FieldID(KindString) | 1045
	FieldDomain              FieldID = FieldID(KindString) | 1046
	FieldLoggedOnUserCount   FieldID = FieldID(KindUint32) | 1047
	FieldLocalDateTime       FieldID = FieldID(KindString) | 1048

	// Environment
	FieldEnvVariable FieldID = FieldID(KindString) | 1100
	FieldEnvValue    FieldID = FieldID(KindString) | 1101
	FieldEnvGroup    FieldID = FieldID(KindGroup) | 1102

	// File system
	FieldDirectoryPath    FieldID = FieldID(KindString) | 1200
	FieldFileName         FieldID = FieldID(KindString) | 1201
	FieldFilePath         FieldID = FieldID(KindString) | 1202
	FieldFileMode         FieldID = FieldID(KindString) | 1203
	FieldFileSize         FieldID = FieldID(KindUint32) | 1204
	FieldFileShortName    FieldID = FieldID(KindString) | 1205
	FieldFileHash         FieldID = FieldID(KindBytes) | 1206
	FieldMount            FieldID = FieldID(KindGroup) | 1207
	FieldMountName        FieldID = FieldID(KindString) | 1208
	FieldMountType        FieldID = FieldID(KindUint32) | 1209
	FieldMountSpaceUser   FieldID = FieldID(KindUint64) | 1210
	FieldMountSpaceTotal  FieldID = FieldID(KindUint64) | 1211
	FieldMountSpaceFree   FieldID = FieldID(KindUint64) | 1212
	FieldMountUncPath     FieldID = FieldID(KindString) | 1213
	FieldStatBuf32        FieldID = FieldID(KindComplex) | 1220
	FieldStatBuf          FieldID = FieldID(KindComplex) | 1221
	FieldSearchRecurse    FieldID = FieldID(KindBool) | 1230
	FieldSearchGlob       FieldID = FieldID(KindString) | 1231
	FieldSearchRoot       FieldID = FieldID(KindString) | 1232
	FieldSearchResults    FieldID = FieldID(KindGroup) | 1233
	FieldFileModeT        FieldID = FieldID(KindUint32) | 1234
	FieldSearchMTimeStart FieldID = FieldID(KindUint32) | 1235
	FieldSearchMTimeEnd   FieldID = FieldID(KindUint32) | 1236

	// Networking
	FieldInterfaceMTU          FieldID = FieldID(KindUint32) | 1402
	FieldInterfaceFlags        FieldID = FieldID(KindString) | 1403
	FieldInterfaceIndex        FieldID = FieldID(KindUint32) | 1404
	FieldSubnet                FieldID = FieldID(KindBytes) | 1420
	FieldNetmask               FieldID = FieldID(KindBytes) | 1421
	FieldGateway               FieldID = FieldID(KindBytes) | 1422
	FieldNetworkRoute          FieldID = FieldID(KindGroup) | 1423
	FieldIPPrefix              FieldID = FieldID(KindUint32) | 1424
	FieldArpEntry              FieldID = FieldID(KindGroup) | 1425
	FieldIP                    FieldID = FieldID(KindBytes) | 1430
	FieldMacAddr               FieldID = FieldID(KindBytes) | 1431
	FieldMacName               FieldID = FieldID(KindString) | 1432
	FieldNetworkInterface      FieldID = FieldID(KindGroup) | 1433
	FieldIP6Scope              FieldID = FieldID(KindBytes) | 1434
	FieldSubnetString          FieldID = FieldID(KindString) | 1440
	FieldNetmaskString         FieldID = FieldID(KindString) | 1441
	FieldGatewayString         FieldID = FieldID(KindString) | 1442
	FieldRouteMetric           FieldID = FieldID(KindUint32) | 1443
	FieldAddrType              FieldID = FieldID(KindUint32) | 1444
	FieldProxyCfgAutodetect    FieldID = FieldID(KindBool) | 1445
	FieldProxyCfgAutoConfigURL FieldID = FieldID(KindString) | 1446
	FieldProxyCfgProxy         FieldID = FieldID(KindString) | 1447
	FieldProxyCfgProxyBypass   FieldID = FieldID(KindString) | 1448

	// Sockets
	FieldPeerHost       FieldID = FieldID(KindString) | 1500
	FieldPeerPort       FieldID = FieldID(KindUint32) | 1501
	FieldLocalHost      FieldID = FieldID(KindString) | 1502
	FieldLocalPort      FieldID = FieldID(KindUint32) | 1503
	FieldConnectRetries FieldID = FieldID(KindUint32) | 1504
	FieldNetstatEntry   FieldID = FieldID(KindGroup) | 1505
	FieldPeerHostRaw    FieldID = FieldID(KindBytes) | 1506
	FieldLocalHostRaw   FieldID = FieldID(KindBytes) | 1507
	FieldShutdownHow    FieldID = FieldID(KindUint32) | 1530

	// Memory
	FieldBaseAddress      FieldID = FieldID(KindUint64) | 2000
	FieldAllocationType   FieldID = FieldID(KindUint32) | 2001
	FieldProtection       FieldID = FieldID(KindUint32) | 2002
	FieldProcessPerms     FieldID = FieldID(KindUint32) | 2003
	FieldProcessMemory    FieldID = FieldID(KindBytes) | 2004
	FieldAllocBaseAddress FieldID = FieldID(KindUint64) | 2005
	FieldMemoryState      FieldID = FieldID(KindUint32) | 2006
	FieldMemoryType       FieldID = FieldID(KindUint32) | 2007
	FieldAllocProtection  FieldID = FieldID(KindUint32) | 2008

	// Processes
	FieldProcessID        FieldID = FieldID(KindUint32) | 2300
	FieldProcessName      FieldID = FieldID(KindString) | 2301
	FieldProcessPath      FieldID = FieldID(KindString) | 2302
	FieldProcessGroup     FieldID = FieldID(KindGroup) | 2303
	FieldProcessFlags     FieldID = FieldID(KindUint32) | 2304
	FieldProcessArguments FieldID = FieldID(KindString) | 2305
	FieldProcessArch      FieldID = FieldID(KindUint32) | 2306
	FieldProcessParentID  FieldID = FieldID(KindUint32) | 2307
	FieldProcessSession   FieldID = FieldID(KindUint32) | 2308

	// Images
	FieldImageFile        FieldID = FieldID(KindString) | 2400
	FieldImageFilePath    FieldID = FieldID(KindString) | 2401
	FieldProcedureName    FieldID = FieldID(KindString) | 2402
	FieldProcedureAddress FieldID = FieldID(KindUint64) | 2403
	FieldImageBase        FieldID = FieldID(KindUint64) | 2404
	FieldImageGroup       FieldID = FieldID(KindGroup) | 2405
	FieldImageName        FieldID = FieldID(KindString) | 2406

	// Threads
	FieldThreadID        FieldID = FieldID(KindUint32) | 2500
	FieldThreadPerms     FieldID = FieldID(KindUint32) | 2502
	FieldExitCode        FieldID = FieldID(KindUint32) | 2510
	FieldEntryPoint      FieldID = FieldID(KindUint64) | 2511
	FieldEntryParameter  FieldID = FieldID(KindUint64) | 2512
	FieldCreationFlags   FieldID = FieldID(KindUint32) | 2513
	FieldRegisterName    FieldID = FieldID(KindString) | 2540
	FieldRegisterSize    FieldID = FieldID(KindUint32) | 2541
	FieldRegisterValue32 FieldID = FieldID(KindUint32) | 2542
	FieldRegister        FieldID = FieldID(KindGroup) | 2550

	// User interface
	FieldIdleTime                 FieldID = FieldID(KindUint32) | 3000
	FieldKeysDump                 FieldID = FieldID(KindString) | 3001
	FieldDesktop                  FieldID = FieldID(KindString) | 3002
	FieldDesktopSession           FieldID = FieldID(KindUint32) | 3003
	FieldDesktopStation           FieldID = FieldID(KindString) | 3004
	FieldDesktopName              FieldID = FieldID(KindString) | 3005
	FieldDesktopScreenshotQuality FieldID = FieldID(KindUint32) | 3008
	FieldDesktopScreenshot        FieldID = FieldID(KindBytes) | 3010

	// Event log
	FieldEventSourceName    FieldID = FieldID(KindString) | 4000
	FieldEventHandle        FieldID = FieldID(KindUint64) | 4001
	FieldEventNumRecords    FieldID = FieldID(KindUint32) | 4002
	FieldEventReadFlags     FieldID = FieldID(KindUint32) | 4003
	FieldEventRecordOffset  FieldID = FieldID(KindUint32) | 4004
	FieldEventRecordNumber  FieldID = FieldID(KindUint32) | 4006
	FieldEventTimeGenerated FieldID = FieldID(KindUint32) | 4007
	FieldEventTimeWritten   FieldID = FieldID(KindUint32) | 4008
	FieldEventID            FieldID = FieldID(KindUint32) | 4009
	FieldEventType          FieldID = FieldID(KindUint32) | 4010
	FieldEventCategory      FieldID = FieldID(KindUint32) | 4011
	FieldEventString        FieldID = FieldID(KindString) | 4012
	FieldEventData          FieldID = FieldID(KindBytes) | 4013

	// Power
	FieldPowerFlags  FieldID = FieldID(KindUint32) | 4100
	FieldPowerReason FieldID = FieldID(KindUint32) | 4101

	// Webcam and audio
	FieldWebcamImage        FieldID = FieldID(KindBytes) | 4700
	FieldWebcamInterfaceID  FieldID = FieldID(KindUint32) | 4701
	FieldWebcamQuality      FieldID = FieldID(KindUint32) | 4702
	FieldWebcamName         FieldID = FieldID(KindString) | 4703
	FieldAudioDuration      FieldID = FieldID(KindUint32) | 4750
	FieldAudioData          FieldID = FieldID(KindBytes) | 4751
	FieldAudioInterfaceID   FieldID = FieldID(KindUint32) | 4752
	FieldAudioInterfaceName FieldID = FieldID(KindString) | 4753
)
