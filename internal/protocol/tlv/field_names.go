package tlv

var fieldNames = map[FieldID]string{
	FieldAny:                      "any",
	FieldMethod:                   "method",
	FieldRequestID:                "request_id",
	FieldException:                "exception",
	FieldResult:                   "result",
	FieldString:                   "string",
	FieldUint:                     "uint",
	FieldBool:                     "bool",
	FieldLength:                   "length",
	FieldData:                     "data",
	FieldFlags:                    "flags",
	FieldCommandID:                "command_id",
	FieldChannelID:                "channel_id",
	FieldChannelType:              "channel_type",
	FieldChannelData:              "channel_data",
	FieldChannelDataGroup:         "channel_data_group",
	FieldChannelClass:             "channel_class",
	FieldChannelParentID:          "channel_parent_id",
	FieldSeekWhence:               "seek_whence",
	FieldSeekOffset:               "seek_offset",
	FieldSeekPos:                  "seek_pos",
	FieldExceptionCode:            "exception_code",
	FieldExceptionString:          "exception_string",
	FieldLibraryPath:              "library_path",
	FieldTargetPath:               "target_path",
	FieldMigratePID:               "migrate_pid",
	FieldMigratePayloadLen:        "migrate_payload_len",
	FieldMigratePayload:           "migrate_payload",
	FieldMigrateArch:              "migrate_arch",
	FieldMigrateBaseAddr:          "migrate_base_addr",
	FieldMigrateEntryPoint:        "migrate_entry_point",
	FieldMigrateSocketPath:        "migrate_socket_path",
	FieldMigrateStubLen:           "migrate_stub_len",
	FieldMigrateStub:              "migrate_stub",
	FieldTransType:                "trans_type",
	FieldTransURL:                 "trans_url",
	FieldTransUA:                  "trans_ua",
	FieldTransCommTimeout:         "trans_comm_timeout",
	FieldTransSessExp:             "trans_sess_exp",
	FieldTransCertHash:            "trans_cert_hash",
	FieldTransProxyHost:           "trans_proxy_host",
	FieldTransProxyUser:           "trans_proxy_user",
	FieldTransProxyPass:           "trans_proxy_pass",
	FieldTransRetryTotal:          "trans_retry_total",
	FieldTransRetryWait:           "trans_retry_wait",
	FieldTransHeaders:             "trans_headers",
	FieldTransGroup:               "trans_group",
	FieldMachineID:                "machine_id",
	FieldUUID:                     "uuid",
	FieldSessionGUID:              "session_guid",
	FieldCipherName:               "cipher_name",
	FieldCipherParameters:         "cipher_parameters",
	FieldRSAPubKey:                "rsa_pub_key",
	FieldSymKeyType:               "sym_key_type",
	FieldSymKey:                   "sym_key",
	FieldEncSymKey:                "enc_sym_key",
	FieldHandle:                   "handle",
	FieldInherit:                  "inherit",
	FieldProcessHandle:            "process_handle",
	FieldThreadHandle:             "thread_handle",
	FieldPrivilege:                "privilege",
	FieldPivotID:                  "pivot_id",
	FieldPivotStageData:           "pivot_stage_data",
	FieldPivotStageDataLen:        "pivot_stage_data_len",
	FieldPivotNamedPipeName:       "pivot_named_pipe_name",
	FieldHKey:                     "hkey",
	FieldBaseKey:                  "base_key",
	FieldPermission:               "permission",
	FieldKeyName:                  "key_name",
	FieldValueName:                "value_name",
	FieldValueType:                "value_type",
	FieldValueData:                "value_data",
	FieldTargetHost:               "target_host",
	FieldComputerName:             "computer_name",
	FieldOperatingSystemName:      "operating_system_name",
	FieldUserName:                 "user_name",
	FieldArchitecture:             "architecture",
	FieldLangSystem:               "lang_system",
	FieldSID:                      "sid",
	FieldDomain:                   "domain",
	FieldLoggedOnUserCount:        "logged_on_user_count",
	FieldLocalDateTime:            "local_date_time",
	FieldEnvVariable:              "env_variable",
	FieldEnvValue:                 "env_value",
	FieldEnvGroup:                 "env_group",
	FieldDirectoryPath:            "directory_path",
	FieldFileName:                 "file_name",
	FieldFilePath:                 "file_path",
	FieldFileMode:                 "file_mode",
	FieldFileSize:                 "file_size",
	FieldFileShortName:            "file_short_name",
	FieldFileHash:                 "file_hash",
	FieldMount:                    "mount",
	FieldMountName:                "mount_name",
	FieldMountType:                "mount_type",
	FieldMountSpaceUser:           "mount_space_user",
	FieldMountSpaceTotal:          "mount_space_total",
	FieldMountSpaceFree:           "mount_space_free",
	FieldMountUncPath:             "mount_unc_path",
	FieldStatBuf32:                "stat_buf32",
	FieldStatBuf:                  "stat_buf",
	FieldSearchRecurse:            "search_recurse",
	FieldSearchGlob:               "search_glob",
	FieldSearchRoot:               "search_root",
	FieldSearchResults:            "search_results",
	FieldFileModeT:                "file_mode_t",
	FieldSearchMTimeStart:         "search_mtime_start",
	FieldSearchMTimeEnd:           "search_mtime_end",
	FieldInterfaceMTU:             "interface_mtu",
	FieldInterfaceFlags:           "interface_flags",
	FieldInterfaceIndex:           "interface_index",
	FieldSubnet:                   "subnet",
	FieldNetmask:                  "netmask",
	FieldGateway:                  "gateway",
	FieldNetworkRoute:             "network_route",
	FieldIPPrefix:                 "ip_prefix",
	FieldArpEntry:                 "arp_entry",
	FieldIP:                       "ip",
	FieldMacAddr:                  "mac_addr",
	FieldMacName:                  "mac_name",
	FieldNetworkInterface:         "network_interface",
	FieldIP6Scope:                 "ip6_scope",
	FieldSubnetString:             "subnet_string",
	FieldNetmaskString:            "netmask_string",
	FieldGatewayString:            "gateway_string",
	FieldRouteMetric:              "route_metric",
	FieldAddrType:                 "addr_type",
	FieldProxyCfgAutodetect:       "proxy_cfg_autodetect",
	FieldProxyCfgAutoConfigURL:    "proxy_cfg_auto_config_url",
	FieldProxyCfgProxy:            "proxy_cfg_proxy",
	FieldProxyCfgProxyBypass:      "proxy_cfg_proxy_bypass",
	FieldPeerHost:                 "peer_host",
	FieldPeerPort:                 "peer_port",
	FieldLocalHost:                "local_host",
	FieldLocalPort:                "local_port",
	FieldConnectRetries:           "connect_retries",
	FieldNetstatEntry:             "netstat_entry",
	FieldPeerHostRaw:              "peer_host_raw",
	FieldLocalHostRaw:             "local_host_raw",
	FieldShutdownHow:              "shutdown_how",
	FieldBaseAddress:              "base_address",
	FieldAllocationType:           "allocation_type",
	FieldProtection:               "protection",
	FieldProcessPerms:             "process_perms",
	FieldProcessMemory:            "process_memory",
	FieldAllocBaseAddress:         "alloc_base_address",
	FieldMemoryState:              "memory_state",
	FieldMemoryType:               "memory_type",
	FieldAllocProtection:          "alloc_protection",
	FieldProcessID:                "process_id",
	FieldProcessName:              "process_name",
	FieldProcessPath:              "process_path",
	FieldProcessGroup:             "process_group",
	FieldProcessFlags:             "process_flags",
	FieldProcessArguments:         "process_arguments",
	FieldProcessArch:              "process_arch",
	FieldProcessParentID:          "process_parent_id",
	FieldProcessSession:           "process_session",
	FieldImageFile:                "image_file",
	FieldImageFilePath:            "image_file_path",
	FieldProcedureName:            "procedure_name",
	FieldProcedureAddress:         "procedure_address",
	FieldImageBase:                "image_base",
	FieldImageGroup:               "image_group",
	FieldImageName:                "image_name",
	FieldThreadID:                 "thread_id",
	FieldThreadPerms:              "thread_perms",
	FieldExitCode:                 "exit_code",
	FieldEntryPoint:               "entry_point",
	FieldEntryParameter:           "entry_parameter",
	FieldCreationFlags:            "creation_flags",
	FieldRegisterName:             "register_name",
	FieldRegisterSize:             "register_size",
	FieldRegisterValue32:          "register_value_32",
	FieldRegister:                 "register",
	FieldIdleTime:                 "idle_time",
	FieldKeysDump:                 "keys_dump",
	FieldDesktop:                  "desktop",
	FieldDesktopSession:           "desktop_session",
	FieldDesktopStation:           "desktop_station",
	FieldDesktopName:              "desktop_name",
	FieldDesktopScreenshotQuality: "desktop_screenshot_quality",
	FieldDesktopScreenshot:        "desktop_screenshot",
	FieldEventSourceName:          "event_source_name",
	FieldEventHandle:              "event_handle",
	FieldEventNumRecords:          "event_num_records",
	FieldEventReadFlags:           "event_read_flags",
	FieldEventRecordOffset:        "event_record_offset",
	FieldEventRecordNumber:        "event_record_number",
	FieldEventTimeGenerated:       "event_time_generated",
	FieldEventTimeWritten:         "event_time_written",
	FieldEventID:                  "event_id",
	FieldEventType:                "event_type",
	FieldEventCategory:            "event_category",
	FieldEventString:              "event_string",
	FieldEventData:                "event_data",
	FieldPowerFlags:               "power_flags",
	FieldPowerReason:              "power_reason",
	FieldWebcamImage:              "webcam_image",
	FieldWebcamInterfaceID:        "webcam_interface_id",
	FieldWebcamQuality:            "webcam_quality",
	FieldWebcamName:               "webcam_name",
	FieldAudioDuration:            "audio_duration",
	FieldAudioData:                "audio_data",
	FieldAudioInterfaceID:         "audio_interface_id",
	FieldAudioInterfaceName:       "audio_interface_name",
}
